package pricing

import (
	"slices"

	"github.com/google/uuid"

	"studioportal/internal/domain"
)

// PackageChanged reports whether saving next over prev would change anything
// a client can observe. Packages with different IDs are never compared and
// report false.
func PackageChanged(prev, next *domain.Package) bool {
	if prev == nil || next == nil || prev.ID != next.ID {
		return false
	}
	if prev.Name != next.Name ||
		prev.Description != next.Description ||
		!sameID(prev.TagID, next.TagID) ||
		prev.PDFPath != next.PDFPath ||
		prev.Price != next.Price {
		return true
	}
	if len(prev.Items) != len(next.Items) {
		return true
	}

	byID := make(map[uuid.UUID]*domain.PackageItem, len(prev.Items))
	for i := range prev.Items {
		byID[prev.Items[i].ID] = &prev.Items[i]
	}
	for i := range next.Items {
		old, ok := byID[next.Items[i].ID]
		if !ok {
			return true
		}
		if ItemChanged(old, &next.Items[i]) {
			return true
		}
	}
	return false
}

// ItemChanged compares two versions of the same item field by field.
func ItemChanged(a, b *domain.PackageItem) bool {
	return a.Name != b.Name ||
		a.Description != b.Description ||
		a.Order != b.Order ||
		a.Kind != b.Kind ||
		a.Quantities != b.Quantities ||
		!slices.Equal(a.CollectionIDs, b.CollectionIDs) ||
		a.Max != b.Max ||
		a.Price != b.Price ||
		a.HardCap != b.HardCap ||
		a.Unique != b.Unique ||
		!sameID(a.Dependent, b.Dependent) ||
		!slices.Equal(a.Statements, b.Statements)
}

func sameID[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
