package analytics

import (
	"testing"

	"industry-flow/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRates(t *testing.T) *Rates {
	t.Helper()

	r, err := NewRates("usd", map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("1.10"),
		"gbp": decimal.RequireFromString("1.25"),
		"USD": decimal.RequireFromString("3"),
	})
	require.NoError(t, err)
	return r
}

func TestNewRatesValidation(t *testing.T) {
	_, err := NewRates("ZZZ", nil)
	require.ErrorIs(t, err, entities.ErrUnsupportedCurrency)

	_, err = NewRates("USD", map[string]decimal.Decimal{"EUR": decimal.Zero})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = NewRates("USD", map[string]decimal.Decimal{"E1R": decimal.NewFromInt(1)})
	require.ErrorIs(t, err, entities.ErrUnsupportedCurrency)
}

func TestRatesConvert(t *testing.T) {
	r := testRates(t)

	require.Equal(t, "USD", r.Base())
	require.Equal(t, []string{"EUR", "GBP", "USD"}, r.Supported())

	// base is pinned to 1 regardless of the configured value
	rate, err := r.Rate("usd")
	require.NoError(t, err)
	require.True(t, rate.Equal(decimal.NewFromInt(1)))

	got, err := r.Convert(decimal.NewFromInt(100), "EUR", "USD")
	require.NoError(t, err)
	require.Equal(t, "110", got.String())

	got, err = r.Convert(decimal.NewFromInt(125), "GBP", "EUR")
	require.NoError(t, err)
	require.Equal(t, "142.05", got.Round(2).String())

	got, err = r.Convert(decimal.RequireFromString("12.34"), "EUR", "eur")
	require.NoError(t, err)
	require.Equal(t, "12.34", got.String())

	_, err = r.Convert(decimal.NewFromInt(1), "JPY", "USD")
	require.ErrorIs(t, err, entities.ErrUnsupportedCurrency)
}
