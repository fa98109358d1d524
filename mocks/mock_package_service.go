package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
	"studioportal/internal/service"
)

// MockPackageService is a mock implementation of service.PackageService.
type MockPackageService struct {
	mock.Mock
}

func (m *MockPackageService) Create(ctx context.Context, input *service.CreatePackageInput) (*domain.Package, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageService) GetByID(ctx context.Context, packageID uuid.UUID) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageService) List(ctx context.Context, offset, limit int) ([]domain.Package, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Package), args.Int(1), args.Error(2)
}

func (m *MockPackageService) Update(ctx context.Context, input *service.UpdatePackageInput) (*domain.Package, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageService) Delete(ctx context.Context, packageID uuid.UUID) error {
	args := m.Called(ctx, packageID)
	return args.Error(0)
}

func (m *MockPackageService) AddItem(ctx context.Context, packageID uuid.UUID, input *service.PackageItemInput) (*domain.PackageItem, error) {
	args := m.Called(ctx, packageID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageItem), args.Error(1)
}

func (m *MockPackageService) UpdateItem(ctx context.Context, packageID, itemID uuid.UUID, input *service.PackageItemInput) (*domain.PackageItem, error) {
	args := m.Called(ctx, packageID, itemID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageItem), args.Error(1)
}

func (m *MockPackageService) RemoveItem(ctx context.Context, packageID, itemID uuid.UUID) error {
	args := m.Called(ctx, packageID, itemID)
	return args.Error(0)
}

func (m *MockPackageService) SwitchItemKind(ctx context.Context, packageID, itemID uuid.UUID, kind domain.ItemKind, dependsOn *uuid.UUID) (*domain.PackageItem, error) {
	args := m.Called(ctx, packageID, itemID, kind, dependsOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageItem), args.Error(1)
}

func (m *MockPackageService) DescribeTiers(ctx context.Context, packageID, itemID uuid.UUID) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID)
	return tierViews(args)
}

func (m *MockPackageService) InsertTierAbove(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID, index)
	return tierViews(args)
}

func (m *MockPackageService) InsertTierBelow(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID, index)
	return tierViews(args)
}

func (m *MockPackageService) DeleteTier(ctx context.Context, packageID, itemID uuid.UUID, statement string) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID, statement)
	return tierViews(args)
}

func (m *MockPackageService) EditTierQuantity(ctx context.Context, packageID, itemID uuid.UUID, index, quantity int) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID, index, quantity)
	return tierViews(args)
}

func (m *MockPackageService) EditTierPrice(ctx context.Context, packageID, itemID uuid.UUID, index int, cents int64) ([]pricing.TierView, error) {
	args := m.Called(ctx, packageID, itemID, index, cents)
	return tierViews(args)
}

func (m *MockPackageService) Quote(ctx context.Context, packageID uuid.UUID, selections map[uuid.UUID]int) (*domain.Quote, error) {
	args := m.Called(ctx, packageID, selections)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockPackageService) ExportPriceSheet(ctx context.Context, packageID uuid.UUID, format domain.ExportFormat) (*service.PriceSheet, error) {
	args := m.Called(ctx, packageID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PriceSheet), args.Error(1)
}

func tierViews(args mock.Arguments) ([]pricing.TierView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.TierView), args.Error(1)
}
