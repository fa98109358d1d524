package port

import (
	"context"

	"github.com/google/uuid"

	"studioportal/internal/domain"
)

// PackageRepository defines the contract for package persistence.
// Items are stored together with their package and written as a whole.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	List(ctx context.Context, offset, limit int) ([]domain.Package, int, error)
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}
