package pricing

import (
	"fmt"

	"studioportal/internal/domain"
)

// SwitchKind returns a copy of item converted to kind. Payload belonging to
// other kinds is cleared; a newly tiered item gets DefaultTiers and a newly
// priced item a max of 1. Switching a dependent item requires dependsOn.
func SwitchKind(item domain.PackageItem, kind domain.ItemKind, dependsOn *domain.PackageItem) (domain.PackageItem, error) {
	if !domain.ValidItemKinds[kind] {
		return item, domain.ErrInvalidItemKind
	}
	if item.Kind == kind {
		return item, nil
	}

	out := item
	out.Kind = kind
	out.Statements = nil
	out.Dependent = nil
	out.Max = 0
	out.HardCap = false
	out.Price = 0

	switch kind {
	case domain.ItemKindTiered:
		out.Quantities = 0
		out.Statements = DefaultTiers().Strings()
	case domain.ItemKindPriced:
		out.Quantities = 0
		out.Max = 1
		out.Price = MinPrice
	case domain.ItemKindDependent:
		if dependsOn == nil || dependsOn.ID == item.ID {
			return item, domain.ErrDependentItemMissing
		}
		id := dependsOn.ID
		out.Dependent = &id
		if out.Quantities < 1 {
			out.Quantities = 1
		}
	}
	return out, nil
}

// ValidateItem checks that item carries exactly the payload of its kind and
// that a dependent item points at another item of pkg.
func ValidateItem(pkg *domain.Package, item *domain.PackageItem) error {
	if !domain.ValidItemKinds[item.Kind] {
		return domain.ErrInvalidItemKind
	}
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidItem)
	}
	if item.Quantities < 0 || item.Max < 0 || item.Price < 0 {
		return fmt.Errorf("%w: negative values are not allowed", domain.ErrInvalidItem)
	}
	if item.Kind != domain.ItemKindTiered && item.Statements != nil {
		return fmt.Errorf("%w: only tiered items carry statements", domain.ErrInvalidItem)
	}
	if item.Kind != domain.ItemKindDependent && item.Dependent != nil {
		return fmt.Errorf("%w: only dependent items reference another item", domain.ErrInvalidItem)
	}

	switch item.Kind {
	case domain.ItemKindTiered:
		tiers, ok := ParseTiers(item.Statements)
		if !ok {
			return fmt.Errorf("%w: malformed statement", domain.ErrInvalidStatements)
		}
		if err := tiers.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidStatements, err)
		}
	case domain.ItemKindPriced:
		if item.Price < MinPrice {
			return fmt.Errorf("%w: priced items need a price", domain.ErrInvalidItem)
		}
		if item.HardCap && item.Max < 1 {
			return fmt.Errorf("%w: a hard cap needs a max of at least 1", domain.ErrInvalidItem)
		}
	case domain.ItemKindDependent:
		if item.Dependent == nil || *item.Dependent == item.ID || pkg.FindItem(*item.Dependent) < 0 {
			return domain.ErrDependentItemMissing
		}
	}
	return nil
}
