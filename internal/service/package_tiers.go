package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

func (s *packageService) DescribeTiers(ctx context.Context, packageID, itemID uuid.UUID) ([]pricing.TierView, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	idx := pkg.FindItem(itemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}
	if pkg.Items[idx].Kind != domain.ItemKindTiered {
		return nil, domain.ErrNotTiered
	}
	return pricing.Views(pkg.Items[idx].Statements), nil
}

func (s *packageService) InsertTierAbove(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error) {
	return s.mutateTiers(ctx, "InsertTierAbove", packageID, itemID, func(t pricing.Tiers) (pricing.Tiers, bool) {
		return t.InsertAbove(index)
	})
}

func (s *packageService) InsertTierBelow(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error) {
	return s.mutateTiers(ctx, "InsertTierBelow", packageID, itemID, func(t pricing.Tiers) (pricing.Tiers, bool) {
		return t.InsertBelow(index)
	})
}

func (s *packageService) DeleteTier(ctx context.Context, packageID, itemID uuid.UUID, statement string) ([]pricing.TierView, error) {
	return s.mutateTiers(ctx, "DeleteTier", packageID, itemID, func(t pricing.Tiers) (pricing.Tiers, bool) {
		return t.Delete(statement)
	})
}

func (s *packageService) EditTierQuantity(ctx context.Context, packageID, itemID uuid.UUID, index, quantity int) ([]pricing.TierView, error) {
	return s.mutateTiers(ctx, "EditTierQuantity", packageID, itemID, func(t pricing.Tiers) (pricing.Tiers, bool) {
		return t.EditQuantity(index, quantity)
	})
}

func (s *packageService) EditTierPrice(ctx context.Context, packageID, itemID uuid.UUID, index int, cents int64) ([]pricing.TierView, error) {
	return s.mutateTiers(ctx, "EditTierPrice", packageID, itemID, func(t pricing.Tiers) (pricing.Tiers, bool) {
		return t.EditPrice(index, cents)
	})
}

// mutateTiers loads the tiered item, applies edit to its schedule and saves
// the package when the schedule actually changed.
func (s *packageService) mutateTiers(
	ctx context.Context,
	op string,
	packageID, itemID uuid.UUID,
	edit func(pricing.Tiers) (pricing.Tiers, bool),
) ([]pricing.TierView, error) {
	prev, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	idx := next.FindItem(itemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}
	item := &next.Items[idx]
	if item.Kind != domain.ItemKindTiered {
		return nil, domain.ErrNotTiered
	}

	tiers, ok := pricing.ParseTiers(item.Statements)
	if !ok {
		log.Printf("packageService.%s: item %s of package %s has malformed statements", op, itemID, packageID)
		return nil, domain.ErrInvalidStatements
	}
	edited, ok := edit(tiers)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTierOperationNotAllowed, op)
	}
	if err := edited.Validate(); err != nil {
		log.Printf("packageService.%s: refusing to save item %s of package %s: %v", op, itemID, packageID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStatements, err)
	}
	item.Statements = edited.Strings()

	if _, err := s.save(ctx, op, prev, next); err != nil {
		return nil, err
	}
	return pricing.Views(item.Statements), nil
}
