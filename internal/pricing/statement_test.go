package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioportal/internal/pricing"
)

func TestParse_WellFormed(t *testing.T) {
	s, ok := pricing.Parse("x <= 5 = 10")
	require.True(t, ok)
	assert.Equal(t, pricing.LessOrEqual, s.Operator)
	assert.Equal(t, 5, s.Quantity)
	assert.Equal(t, int64(1000), s.Price)
}

func TestParse_FractionalPrice(t *testing.T) {
	s, ok := pricing.Parse("x > 12 = 7.5")
	require.True(t, ok)
	assert.Equal(t, pricing.Greater, s.Operator)
	assert.Equal(t, int64(750), s.Price)

	s, ok = pricing.Parse("x >= 3 = 0.05")
	require.True(t, ok)
	assert.Equal(t, int64(5), s.Price)
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"x <= 5",
		"x <= 5 = 10 extra",
		"y <= 5 = 10",
		"x => 5 = 10",
		"x <= five = 10",
		"x <= -5 = 10",
		"x <= 5 : 10",
		"x <= 5 = ten",
		"x <= 5 = 1.2.3",
		"x <= 5 = -1",
		"x <= 5 = .",
	}
	for _, c := range cases {
		_, ok := pricing.Parse(c)
		assert.False(t, ok, "expected %q to be rejected", c)
	}
}

func TestTokens_KeepsPositions(t *testing.T) {
	assert.Equal(t, []string{"x", "<", "4", "=", "9.99"}, pricing.Tokens("x < 4 = 9.99"))
	assert.Len(t, pricing.Tokens("x <"), 2)
}

func TestStatement_RoundTrip(t *testing.T) {
	for _, raw := range []string{
		"x <= 5 = 10",
		"x > 5 = 5",
		"x < 14 = 3.25",
		"x >= 100 = 0.01",
		"x = 7 = 1234.5",
	} {
		s, ok := pricing.Parse(raw)
		require.True(t, ok, raw)

		again, ok := pricing.Parse(s.String())
		require.True(t, ok, raw)
		assert.Equal(t, s, again)
		assert.Equal(t, raw, s.String())
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "10", pricing.FormatDecimal(1000))
	assert.Equal(t, "10.5", pricing.FormatDecimal(1050))
	assert.Equal(t, "10.55", pricing.FormatDecimal(1055))
	assert.Equal(t, "0.05", pricing.FormatDecimal(5))
	assert.Equal(t, "0", pricing.FormatDecimal(0))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", pricing.FormatUSD(0))
	assert.Equal(t, "$0.01", pricing.FormatUSD(1))
	assert.Equal(t, "$10.00", pricing.FormatUSD(1000))
	assert.Equal(t, "$999.99", pricing.FormatUSD(99999))
	assert.Equal(t, "$1,234.50", pricing.FormatUSD(123450))
	assert.Equal(t, "$1,000,000.00", pricing.FormatUSD(100000000))
	assert.Equal(t, "-$3.07", pricing.FormatUSD(-307))
}

func TestClause(t *testing.T) {
	assert.Equal(t, "more than 5 items", pricing.Clause(pricing.Greater, 5))
	assert.Equal(t, "5 or more items", pricing.Clause(pricing.GreaterOrEqual, 5))
	assert.Equal(t, "less than 5 items", pricing.Clause(pricing.Less, 5))
	assert.Equal(t, "5 or less items", pricing.Clause(pricing.LessOrEqual, 5))
	assert.Equal(t, "Equal to 5 items", pricing.Clause(pricing.Equal, 5))
	assert.Empty(t, pricing.Clause(pricing.Operator("!="), 5))
}

func TestDescribe_BinarySplit(t *testing.T) {
	assert.Equal(t, "5 or less items is $10.00", pricing.Describe("x <= 5 = 10"))
	assert.Equal(t, "more than 5 items is $5.00", pricing.Describe("x > 5 = 5"))
}

func TestDescribe_Deterministic(t *testing.T) {
	first := pricing.Describe("x < 1200 = 1500.5")
	assert.Equal(t, "less than 1200 items is $1,500.50", first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, pricing.Describe("x < 1200 = 1500.5"))
	}
}

func TestDescribe_MalformedIsEmpty(t *testing.T) {
	assert.Empty(t, pricing.Describe("x <= = 10"))
	assert.Empty(t, pricing.Describe("garbage"))
}

func TestInputFilters(t *testing.T) {
	assert.Equal(t, "123", pricing.DigitsOnly("1a2-3 "))
	assert.Empty(t, pricing.DigitsOnly("abc"))
	assert.Equal(t, "12.50", pricing.DecimalOnly("$12.5.0"))
	assert.Equal(t, "3", pricing.DecimalOnly("3"))
}

func TestParse_QuantityAboveMaximum(t *testing.T) {
	_, ok := pricing.Parse("x <= 1000000 = 10")
	assert.True(t, ok)

	for _, raw := range []string{"x <= 1000001 = 10", "x <= 9223372036854775807 = 10", "x <= 99999999999999999999 = 10"} {
		_, ok := pricing.Parse(raw)
		assert.False(t, ok, raw)
	}
}
