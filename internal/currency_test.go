package internal

import (
	"testing"

	"courselab/internal/db/models/postgres/public/model"

	"github.com/stretchr/testify/require"
)

func Test_ConvertPrice(t *testing.T) {
	rates := []model.CurrencyRate{
		{CurrencyCode: "EUR", RateToUsd: 0.92},
		{CurrencyCode: "JPY", RateToUsd: 148.0},
		{CurrencyCode: "GBP", RateToUsd: 0.79},
	}

	t.Run("base currency passes through", func(t *testing.T) {
		require.Equal(t, int64(10000), ConvertPrice(10000, "USD", rates))
	})

	t.Run("converted amounts are floored, never rounded up", func(t *testing.T) {
		// 10000 / 0.92 = 10869.56...
		require.Equal(t, int64(10869), ConvertPrice(10000, "EUR", rates))
		// 10000 / 148 = 67.56...
		require.Equal(t, int64(67), ConvertPrice(10000, "JPY", rates))
	})

	t.Run("unknown currency falls back to base amount", func(t *testing.T) {
		require.Equal(t, int64(4242), ConvertPrice(4242, "ZZZ", rates))
	})

	t.Run("missing rate table falls back to base amount", func(t *testing.T) {
		require.Equal(t, int64(4242), ConvertPrice(4242, "EUR", nil))
	})

	t.Run("zero amount", func(t *testing.T) {
		require.Equal(t, int64(0), ConvertPrice(0, "EUR", rates))
	})

	t.Run("lowercase codes match", func(t *testing.T) {
		require.Equal(t, int64(10869), ConvertPrice(10000, "eur", rates))
	})
}

func Test_FormatPrice(t *testing.T) {
	t.Run("two-decimal currencies", func(t *testing.T) {
		require.Equal(t, "$100.00", FormatPrice(10000, "USD"))
		require.Equal(t, "$0.00", FormatPrice(0, "USD"))
		require.Equal(t, "€49.99", FormatPrice(4999, "EUR"))
		require.Equal(t, "CA$100.00", FormatPrice(10000, "CAD"))
	})

	t.Run("zero-decimal currencies drop the fraction", func(t *testing.T) {
		require.Equal(t, "¥100", FormatPrice(10000, "JPY"))
		require.Equal(t, "₩2500", FormatPrice(250000, "KRW"))
	})

	t.Run("unknown currency uses code prefix", func(t *testing.T) {
		require.Equal(t, "ZZZ 100.00", FormatPrice(10000, "ZZZ"))
	})
}

func Test_currencyLookups(t *testing.T) {
	require.False(t, UsesDecimals("JPY"))
	require.True(t, UsesDecimals("USD"))
	require.True(t, UsesDecimals("ZZZ"))

	require.Equal(t, "$", GetCurrencySymbol("USD"))
	require.Equal(t, "₹", GetCurrencySymbol("INR"))
	require.Equal(t, "CA$", GetCurrencySymbol("cad"))
}
