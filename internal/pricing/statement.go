// Package pricing implements the tiered package pricing model: boundary
// statements of the form "x <op> <quantity> = <price>", the tier list that
// keeps them covering every quantity exactly once, and the rendering used by
// the admin editor and the client-facing package display.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Variable is the only variable name a statement may use.
const Variable = "x"

// MinPrice is the smallest price a tier may carry, in cents.
const MinPrice int64 = 1

// Operator is the comparison a statement applies to the purchased quantity.
type Operator string

const (
	Less           Operator = "<"
	LessOrEqual    Operator = "<="
	Greater        Operator = ">"
	GreaterOrEqual Operator = ">="
	Equal          Operator = "="
)

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	switch op {
	case Less, LessOrEqual, Greater, GreaterOrEqual, Equal:
		return true
	}
	return false
}

// Holds reports whether "x op quantity" is true for x.
func (op Operator) Holds(x, quantity int) bool {
	switch op {
	case Less:
		return x < quantity
	case LessOrEqual:
		return x <= quantity
	case Greater:
		return x > quantity
	case GreaterOrEqual:
		return x >= quantity
	case Equal:
		return x == quantity
	}
	return false
}

// Statement is one tier boundary rule. Price is in cents.
type Statement struct {
	Operator Operator `json:"operator"`
	Quantity int      `json:"quantity"`
	Price    int64    `json:"price"`
}

// Tokens returns the five positional wire tokens of s.
func (s Statement) Tokens() [5]string {
	return [5]string{
		Variable,
		string(s.Operator),
		strconv.Itoa(s.Quantity),
		string(Equal),
		FormatDecimal(s.Price),
	}
}

// String returns the wire form, e.g. "x <= 5 = 10".
func (s Statement) String() string {
	t := s.Tokens()
	return strings.Join(t[:], " ")
}

// Tokens splits a raw statement on whitespace. Malformed input yields a slice
// whose length is not 5; callers index it only after checking.
func Tokens(raw string) []string {
	return strings.Fields(raw)
}

// Parse decodes a wire statement. ok is false for anything that is not exactly
// "x <op> <non-negative int> = <non-negative decimal>", and for quantities
// above MaxQuantity.
func Parse(raw string) (s Statement, ok bool) {
	parts := Tokens(raw)
	if len(parts) != 5 {
		return Statement{}, false
	}
	if parts[0] != Variable || parts[3] != string(Equal) {
		return Statement{}, false
	}
	op := Operator(parts[1])
	if !op.Valid() {
		return Statement{}, false
	}
	if !isDigits(parts[2]) {
		return Statement{}, false
	}
	qty, err := strconv.Atoi(parts[2])
	if err != nil || qty > MaxQuantity {
		return Statement{}, false
	}
	price, ok := ParseDecimal(parts[4])
	if !ok {
		return Statement{}, false
	}
	return Statement{Operator: op, Quantity: qty, Price: price}, true
}

// ParseDecimal converts a base-10 decimal string with an optional fractional
// part into cents, rounding half away from zero past the second decimal.
func ParseDecimal(raw string) (int64, bool) {
	if raw == "" || strings.Count(raw, ".") > 1 {
		return 0, false
	}
	whole, frac, _ := strings.Cut(raw, ".")
	if whole == "" && frac == "" {
		return 0, false
	}
	if (whole != "" && !isDigits(whole)) || (frac != "" && !isDigits(frac)) {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || f > math.MaxInt64/100 {
		return 0, false
	}
	return int64(math.Round(f * 100)), true
}

// FormatDecimal renders cents in the shortest decimal wire form: 1000 -> "10",
// 1050 -> "10.5", 1055 -> "10.55".
func FormatDecimal(cents int64) string {
	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100
	switch {
	case frac == 0:
		return whole
	case frac%10 == 0:
		return whole + "." + strconv.FormatInt(frac/10, 10)
	case frac < 10:
		return whole + ".0" + strconv.FormatInt(frac, 10)
	default:
		return whole + "." + strconv.FormatInt(frac, 10)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
