package pricing

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"studioportal/internal/domain"
)

// Quote prices pkg for the quantities a client selected per item. Items the
// client did not select contribute only what the package already includes.
// Tiered items whose statements do not parse are left out of the quote.
// Selections above MaxQuantity, and totals that would not fit in int64 cents,
// fail with domain.ErrQuoteTooLarge.
func Quote(pkg *domain.Package, selections map[uuid.UUID]int) (*domain.Quote, error) {
	for id, qty := range selections {
		if qty > MaxQuantity {
			return nil, fmt.Errorf("%w: item %s selects %d, at most %d allowed", domain.ErrQuoteTooLarge, id, qty, MaxQuantity)
		}
	}

	items := make([]domain.PackageItem, len(pkg.Items))
	copy(items, pkg.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	q := &domain.Quote{
		PackageID: pkg.ID,
		BasePrice: pkg.Price,
		Lines:     []domain.QuoteLine{},
		Total:     pkg.Price,
	}

	for i := range items {
		item := &items[i]
		line, ok, err := quoteItem(pkg, item, selections)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		total, ok := addCents(q.Total, line.Total)
		if !ok {
			return nil, fmt.Errorf("%w: total of %s", domain.ErrQuoteTooLarge, pkg.Name)
		}
		q.Lines = append(q.Lines, line)
		q.Total = total
	}
	q.FormattedTotal = FormatUSD(q.Total)
	return q, nil
}

func quoteItem(pkg *domain.Package, item *domain.PackageItem, selections map[uuid.UUID]int) (domain.QuoteLine, bool, error) {
	line := domain.QuoteLine{ItemID: item.ID, Name: item.Name, Kind: item.Kind}
	selected := max(selections[item.ID], 0)

	switch item.Kind {
	case domain.ItemKindDefault:
		line.Quantity = item.Quantities
		line.Description = includedDescription(item.Quantities)
		return line, true, nil

	case domain.ItemKindPriced:
		if selected == 0 {
			return line, false, nil
		}
		if item.HardCap && selected > item.Max {
			return line, false, fmt.Errorf("%w: %s allows at most %d", domain.ErrQuantityOverCap, item.Name, item.Max)
		}
		line.Quantity = selected
		line.UnitPrice = item.Price
		total, ok := mulCents(selected, item.Price)
		if !ok {
			return line, false, fmt.Errorf("%w: %s", domain.ErrQuoteTooLarge, item.Name)
		}
		line.Total = total
		line.Description = strconv.Itoa(selected) + " x " + FormatUSD(item.Price)
		return line, true, nil

	case domain.ItemKindDependent:
		if item.Dependent == nil {
			return line, false, nil
		}
		idx := pkg.FindItem(*item.Dependent)
		if idx < 0 {
			return line, false, nil
		}
		parent := &pkg.Items[idx]
		base := selections[parent.ID]
		if parent.Kind == domain.ItemKindDefault {
			base = parent.Quantities
		}
		if base <= 0 {
			return line, false, nil
		}
		if item.Quantities > 0 && base > math.MaxInt/item.Quantities {
			return line, false, fmt.Errorf("%w: %s", domain.ErrQuoteTooLarge, item.Name)
		}
		line.Quantity = item.Quantities * base
		line.Description = includedDescription(line.Quantity)
		return line, true, nil

	case domain.ItemKindTiered:
		if selected == 0 {
			return line, false, nil
		}
		tiers, ok := ParseTiers(item.Statements)
		if !ok {
			return line, false, nil
		}
		idx := tiers.Match(selected)
		if idx < 0 {
			return line, false, nil
		}
		line.Quantity = selected
		line.UnitPrice = tiers[idx].Price
		total, ok := mulCents(selected, tiers[idx].Price)
		if !ok {
			return line, false, fmt.Errorf("%w: %s", domain.ErrQuoteTooLarge, item.Name)
		}
		line.Total = total
		line.Description = tiers[idx].Sentence()
		return line, true, nil
	}
	return line, false, nil
}

// mulCents multiplies a non-negative quantity by a non-negative price.
func mulCents(qty int, price int64) (int64, bool) {
	if qty < 0 || price < 0 {
		return 0, false
	}
	if price != 0 && int64(qty) > math.MaxInt64/price {
		return 0, false
	}
	return int64(qty) * price, true
}

func addCents(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func includedDescription(n int) string {
	if n == 1 {
		return "1 item included"
	}
	return strconv.Itoa(n) + " items included"
}
