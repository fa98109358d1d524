package port

import (
	"context"

	"studioportal/internal/domain"
)

// PackageNotifier tells studio staff that a package's pricing was changed.
type PackageNotifier interface {
	SendPackageUpdated(ctx context.Context, toEmail string, pkg *domain.Package) error
}
