package pricing_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

func TestSwitchKind_ToTieredSeedsStatements(t *testing.T) {
	pkg := samplePackage()

	out, err := pricing.SwitchKind(pkg.Items[1], domain.ItemKindTiered, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemKindTiered, out.Kind)
	assert.Equal(t, []string{"x <= 5 = 10", "x > 5 = 5"}, out.Statements)
	assert.Zero(t, out.Max)
	assert.Zero(t, out.Price)
	assert.NoError(t, pricing.ValidateItem(pkg, &out))
}

func TestSwitchKind_AwayFromTieredDropsStatements(t *testing.T) {
	pkg := samplePackage()

	out, err := pricing.SwitchKind(pkg.Items[2], domain.ItemKindPriced, nil)
	require.NoError(t, err)
	assert.Nil(t, out.Statements)
	assert.Equal(t, 1, out.Max)
	assert.Equal(t, pricing.MinPrice, out.Price)
	assert.NoError(t, pricing.ValidateItem(pkg, &out))
}

func TestSwitchKind_Dependent(t *testing.T) {
	pkg := samplePackage()

	_, err := pricing.SwitchKind(pkg.Items[2], domain.ItemKindDependent, nil)
	assert.True(t, errors.Is(err, domain.ErrDependentItemMissing))

	out, err := pricing.SwitchKind(pkg.Items[2], domain.ItemKindDependent, &pkg.Items[0])
	require.NoError(t, err)
	require.NotNil(t, out.Dependent)
	assert.Equal(t, pkg.Items[0].ID, *out.Dependent)
	assert.Equal(t, 1, out.Quantities)
	assert.NoError(t, pricing.ValidateItem(pkg, &out))
}

func TestSwitchKind_Invalid(t *testing.T) {
	pkg := samplePackage()
	_, err := pricing.SwitchKind(pkg.Items[0], domain.ItemKind("bundle"), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidItemKind))
}

func TestValidateItem_RejectsMixedPayload(t *testing.T) {
	pkg := samplePackage()
	dep := pkg.Items[0].ID

	item := pkg.Items[2]
	item.Dependent = &dep
	assert.True(t, errors.Is(pricing.ValidateItem(pkg, &item), domain.ErrInvalidItem))

	item = pkg.Items[0]
	item.Statements = []string{"x <= 5 = 10", "x > 5 = 5"}
	assert.True(t, errors.Is(pricing.ValidateItem(pkg, &item), domain.ErrInvalidItem))
}

func TestValidateItem_Statements(t *testing.T) {
	pkg := samplePackage()

	item := pkg.Items[2]
	item.Statements = []string{"x <= 5 = 10"}
	assert.True(t, errors.Is(pricing.ValidateItem(pkg, &item), domain.ErrInvalidStatements))

	item.Statements = []string{"x <= 5 = 10", "x >"}
	assert.True(t, errors.Is(pricing.ValidateItem(pkg, &item), domain.ErrInvalidStatements))
}

func TestValidateItem_DependentMustExist(t *testing.T) {
	pkg := samplePackage()
	missing := uuid.New()

	item := domain.PackageItem{
		ID:         uuid.New(),
		Name:       "Orphan",
		Kind:       domain.ItemKindDependent,
		Quantities: 1,
		Dependent:  &missing,
	}
	assert.True(t, errors.Is(pricing.ValidateItem(pkg, &item), domain.ErrDependentItemMissing))
}
