package pricing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

func samplePackage() *domain.Package {
	tagID := uuid.New()
	return &domain.Package{
		ID:          uuid.New(),
		Name:        "Senior Portraits",
		Description: "Outdoor session",
		TagID:       &tagID,
		PDFPath:     "packages/senior.pdf",
		Price:       25000,
		Items: domain.PackageItems{
			{
				ID:            uuid.New(),
				Name:          "Digital downloads",
				Order:         0,
				Kind:          domain.ItemKindDefault,
				Quantities:    10,
				CollectionIDs: []uuid.UUID{uuid.New()},
			},
			{
				ID:    uuid.New(),
				Name:  "Extra prints",
				Order: 1,
				Kind:  domain.ItemKindPriced,
				Max:   5,
				Price: 1500,
			},
			{
				ID:         uuid.New(),
				Name:       "Wallets",
				Order:      2,
				Kind:       domain.ItemKindTiered,
				Statements: []string{"x <= 5 = 10", "x > 5 = 5"},
			},
		},
	}
}

// clonePackage deep-copies the slices PackageChanged looks at.
func clonePackage(p *domain.Package) *domain.Package {
	out := *p
	out.Items = make(domain.PackageItems, len(p.Items))
	for i, item := range p.Items {
		item.CollectionIDs = append([]uuid.UUID(nil), item.CollectionIDs...)
		item.Statements = append([]string(nil), item.Statements...)
		out.Items[i] = item
	}
	return &out
}

func TestPackageChanged_Identical(t *testing.T) {
	a := samplePackage()
	assert.False(t, pricing.PackageChanged(a, clonePackage(a)))
}

func TestPackageChanged_ItemPrice(t *testing.T) {
	a := samplePackage()
	b := clonePackage(a)
	b.Items[0].Price = 100
	assert.True(t, pricing.PackageChanged(a, b))
}

func TestPackageChanged_DifferentIDs(t *testing.T) {
	a := samplePackage()
	b := clonePackage(a)
	b.ID = uuid.New()
	b.Name = "Something else entirely"
	assert.False(t, pricing.PackageChanged(a, b))
	assert.False(t, pricing.PackageChanged(nil, b))
}

func TestPackageChanged_TopLevelFields(t *testing.T) {
	mutations := map[string]func(p *domain.Package){
		"name":        func(p *domain.Package) { p.Name = "x" },
		"description": func(p *domain.Package) { p.Description = "x" },
		"tag":         func(p *domain.Package) { p.TagID = nil },
		"pdf":         func(p *domain.Package) { p.PDFPath = "other.pdf" },
		"price":       func(p *domain.Package) { p.Price++ },
	}
	for name, mutate := range mutations {
		a := samplePackage()
		b := clonePackage(a)
		mutate(b)
		assert.True(t, pricing.PackageChanged(a, b), name)
	}
}

func TestPackageChanged_ItemFields(t *testing.T) {
	dep := uuid.New()
	mutations := map[string]func(i *domain.PackageItem){
		"name":        func(i *domain.PackageItem) { i.Name = "x" },
		"description": func(i *domain.PackageItem) { i.Description = "x" },
		"order":       func(i *domain.PackageItem) { i.Order = 9 },
		"quantities":  func(i *domain.PackageItem) { i.Quantities++ },
		"collections": func(i *domain.PackageItem) { i.CollectionIDs = append(i.CollectionIDs, uuid.New()) },
		"max":         func(i *domain.PackageItem) { i.Max++ },
		"hard cap":    func(i *domain.PackageItem) { i.HardCap = !i.HardCap },
		"unique":      func(i *domain.PackageItem) { i.Unique = !i.Unique },
		"dependent":   func(i *domain.PackageItem) { i.Dependent = &dep },
		"statements":  func(i *domain.PackageItem) { i.Statements = []string{"x <= 4 = 10", "x > 4 = 5"} },
	}
	for name, mutate := range mutations {
		a := samplePackage()
		b := clonePackage(a)
		mutate(&b.Items[2])
		assert.True(t, pricing.PackageChanged(a, b), name)
	}
}

func TestPackageChanged_ItemsAddedOrReplaced(t *testing.T) {
	a := samplePackage()

	added := clonePackage(a)
	added.Items = append(added.Items, domain.PackageItem{ID: uuid.New(), Name: "Album"})
	assert.True(t, pricing.PackageChanged(a, added))

	removed := clonePackage(a)
	removed.Items = removed.Items[:2]
	assert.True(t, pricing.PackageChanged(a, removed))

	replaced := clonePackage(a)
	replaced.Items[1].ID = uuid.New()
	assert.True(t, pricing.PackageChanged(a, replaced))
}

func TestPackageChanged_ItemOrderInSliceIgnored(t *testing.T) {
	a := samplePackage()
	b := clonePackage(a)
	b.Items[0], b.Items[2] = b.Items[2], b.Items[0]
	assert.False(t, pricing.PackageChanged(a, b))
}
