package pricing

import (
	"errors"
	"fmt"
	"math"
)

// MinGap is the minimum distance between adjacent tier boundaries.
const MinGap = 2

// MaxQuantity is the largest quantity a statement or a selection may carry.
const MaxQuantity = 1_000_000

// insertStep is how far a new boundary sits from the tier it was inserted
// next to.
const insertStep = 2

// priceStep is the placeholder price offset applied to inserted tiers.
const priceStep int64 = 100

// Tiers is an ordered tier schedule, lowest quantity first.
type Tiers []Statement

// DefaultTiers is the schedule an item receives when it becomes tiered.
func DefaultTiers() Tiers {
	return Tiers{
		{Operator: LessOrEqual, Quantity: 5, Price: 1000},
		{Operator: Greater, Quantity: 5, Price: 500},
	}
}

// ParseTiers parses every wire statement. ok is false if any is malformed.
func ParseTiers(raw []string) (Tiers, bool) {
	out := make(Tiers, 0, len(raw))
	for _, r := range raw {
		s, ok := Parse(r)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Strings returns the wire form of every tier.
func (t Tiers) Strings() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.String()
	}
	return out
}

// Validate checks the structural invariants of a schedule.
func (t Tiers) Validate() error {
	n := len(t)
	if n < 2 {
		return errors.New("a tier schedule needs at least 2 statements")
	}
	for i, s := range t {
		if s.Quantity < 1 || s.Quantity > MaxQuantity {
			return fmt.Errorf("statement %d: quantity must be between 1 and %d", i, MaxQuantity)
		}
		if s.Price < MinPrice {
			return fmt.Errorf("statement %d: price must be at least %s", i, FormatUSD(MinPrice))
		}
		if want := expectedOperator(i, n); s.Operator != want {
			return fmt.Errorf("statement %d: operator must be %q", i, want)
		}
	}
	if n == 2 {
		if t[0].Quantity != t[1].Quantity {
			return errors.New("a two tier schedule must split on a single quantity")
		}
		return nil
	}
	for i := 1; i <= n-2; i++ {
		if t[i].Quantity-t[i-1].Quantity < MinGap {
			return fmt.Errorf("statement %d: boundary must be at least %d above the previous one", i, MinGap)
		}
	}
	if t[n-1].Quantity != t[n-2].Quantity {
		return errors.New("the top two statements must share a quantity")
	}
	return nil
}

func expectedOperator(i, n int) Operator {
	switch {
	case i == 0:
		return LessOrEqual
	case n == 2:
		return Greater
	case i == n-1:
		return GreaterOrEqual
	default:
		return Less
	}
}

// Range is the set of quantities a tier actually prices once earlier tiers
// have claimed theirs.
type Range struct {
	Min       int  `json:"min"`
	Max       int  `json:"max"`
	Unbounded bool `json:"unbounded"`
	Empty     bool `json:"empty"`
}

// Contains reports whether x falls in r.
func (r Range) Contains(x int) bool {
	if r.Empty || x < r.Min {
		return false
	}
	return r.Unbounded || x <= r.Max
}

// Ranges resolves every tier against the ones before it: a quantity belongs
// to the first tier whose statement holds for it.
func (t Tiers) Ranges() []Range {
	out := make([]Range, len(t))
	claimed := -1         // every x <= claimed belongs to an earlier tier
	suffix := math.MaxInt // every x >= suffix belongs to an earlier tier
	for i, s := range t {
		var r Range
		switch s.Operator {
		case Less, LessOrEqual:
			end := s.Quantity
			if s.Operator == Less {
				end--
			}
			r = Range{Min: claimed + 1, Max: min(end, suffix-1)}
			r.Empty = r.Min > r.Max
			claimed = max(claimed, end)
		case Greater, GreaterOrEqual:
			start := s.Quantity
			if s.Operator == Greater {
				start++
			}
			r = Range{Min: max(start, claimed+1), Unbounded: true}
			if suffix != math.MaxInt {
				// Only the span below the earlier suffix is still free.
				r = Range{Min: r.Min, Max: suffix - 1}
				r.Empty = r.Min > r.Max
			}
			if !r.Empty {
				suffix = min(suffix, r.Min)
			}
		case Equal:
			r = Range{Min: s.Quantity, Max: s.Quantity}
			r.Empty = s.Quantity <= claimed || s.Quantity >= suffix
		default:
			r.Empty = true
		}
		out[i] = r
	}
	return out
}

// Match returns the index of the tier that prices quantity x, or -1.
func (t Tiers) Match(x int) int {
	if x < 0 {
		return -1
	}
	for i, r := range t.Ranges() {
		if r.Contains(x) {
			return i
		}
	}
	return -1
}

// PriceFor returns the unit price for quantity x.
func (t Tiers) PriceFor(x int) (int64, bool) {
	i := t.Match(x)
	if i < 0 {
		return 0, false
	}
	return t[i].Price, true
}
