package pricing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

func TestQuote_AllKinds(t *testing.T) {
	pkg := samplePackage()
	parentID := pkg.Items[0].ID
	pkg.Items = append(pkg.Items, domain.PackageItem{
		ID:         uuid.New(),
		Name:       "Retouched downloads",
		Order:      3,
		Kind:       domain.ItemKindDependent,
		Quantities: 1,
		Dependent:  &parentID,
	})

	q, err := pricing.Quote(pkg, map[uuid.UUID]int{
		pkg.Items[1].ID: 2, // extra prints
		pkg.Items[2].ID: 8, // wallets
	})
	require.NoError(t, err)
	require.Len(t, q.Lines, 4)

	assert.Equal(t, "10 items included", q.Lines[0].Description)
	assert.Equal(t, int64(0), q.Lines[0].Total)

	assert.Equal(t, int64(3000), q.Lines[1].Total)
	assert.Equal(t, "2 x $15.00", q.Lines[1].Description)

	assert.Equal(t, int64(500), q.Lines[2].UnitPrice)
	assert.Equal(t, int64(4000), q.Lines[2].Total)
	assert.Equal(t, "more than 5 items is $5.00", q.Lines[2].Description)

	assert.Equal(t, 10, q.Lines[3].Quantity)

	assert.Equal(t, int64(25000+3000+4000), q.Total)
	assert.Equal(t, "$320.00", q.FormattedTotal)
}

func TestQuote_OverHardCap(t *testing.T) {
	pkg := samplePackage()
	pkg.Items[1].HardCap = true

	_, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[1].ID: 6})
	assert.True(t, errors.Is(err, domain.ErrQuantityOverCap))
}

func TestQuote_SoftCapAllowsMore(t *testing.T) {
	pkg := samplePackage()

	q, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[1].ID: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(25000+6*1500), q.Total)
}

func TestQuote_MalformedTiersSkipped(t *testing.T) {
	pkg := samplePackage()
	pkg.Items[2].Statements = []string{"x <= 5 = 10", "broken"}

	q, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[2].ID: 3})
	require.NoError(t, err)
	assert.Len(t, q.Lines, 1)
	assert.Equal(t, int64(25000), q.Total)
}

func TestQuote_OrdersLines(t *testing.T) {
	pkg := samplePackage()
	pkg.Items[0].Order = 5

	q, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[1].ID: 1, pkg.Items[2].ID: 1})
	require.NoError(t, err)
	require.Len(t, q.Lines, 3)
	assert.Equal(t, "Extra prints", q.Lines[0].Name)
	assert.Equal(t, "Digital downloads", q.Lines[2].Name)
}

func TestQuote_SelectionAboveMaximum(t *testing.T) {
	pkg := samplePackage()

	_, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[2].ID: 100_000_000_000_000_000})
	assert.True(t, errors.Is(err, domain.ErrQuoteTooLarge))

	q, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[2].ID: pricing.MaxQuantity})
	require.NoError(t, err)
	assert.Equal(t, int64(25000+pricing.MaxQuantity*500), q.Total)
}

func TestQuote_LineTotalOverflow(t *testing.T) {
	pkg := samplePackage()
	pkg.Items[1].Price = math.MaxInt64 / 2

	_, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[1].ID: 3})
	assert.True(t, errors.Is(err, domain.ErrQuoteTooLarge))
}

func TestQuote_GrandTotalOverflow(t *testing.T) {
	pkg := samplePackage()
	pkg.Price = math.MaxInt64 - 1000

	_, err := pricing.Quote(pkg, map[uuid.UUID]int{pkg.Items[1].ID: 1})
	assert.True(t, errors.Is(err, domain.ErrQuoteTooLarge))

	q, err := pricing.Quote(pkg, nil)
	require.NoError(t, err)
	assert.Equal(t, pkg.Price, q.Total)
}
