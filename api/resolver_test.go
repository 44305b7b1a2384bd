package api

import (
	"testing"
	"time"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_statusCodeForAssignError(t *testing.T) {
	t.Run("unknown experiment", func(t *testing.T) {
		require.Equal(t, 404, statusCodeForAssignError(domain.ErrExperimentNotFound))
	})
	t.Run("bad identity", func(t *testing.T) {
		require.Equal(t, 400, statusCodeForAssignError(domain.ErrInvalidIdentity))
	})
	t.Run("inactive experiment", func(t *testing.T) {
		require.Equal(t, 400, statusCodeForAssignError(domain.ErrExperimentNotActive))
	})
	t.Run("anything else", func(t *testing.T) {
		require.Equal(t, 500, statusCodeForAssignError(domain.ErrNoVariants))
	})
}

func Test_pricingResponseFromDomain(t *testing.T) {
	prices := []model.CoursePrice{
		{
			CoursePriceID: uuid.New(),
			CourseName:    "intro-to-go",
			AmountCents:   10000,
		},
	}
	rates := []model.CurrencyRate{
		{CurrencyCode: "EUR", RateToUsd: 0.92, UpdatedAt: time.Now().UTC()},
		{CurrencyCode: "JPY", RateToUsd: 148, UpdatedAt: time.Now().UTC()},
	}

	t.Run("eur conversion", func(t *testing.T) {
		out := pricingResponseFromDomain(prices, "EUR", rates)
		require.Equal(t, "", cmp.Diff(
			[]coursePriceResponse{
				{
					CoursePriceID: prices[0].CoursePriceID,
					CourseName:    "intro-to-go",
					CurrencyCode:  "EUR",
					Amount:        10869,
					Display:       "€108.69",
				},
			},
			out,
		))
	})

	t.Run("jpy floors against the stored rate", func(t *testing.T) {
		out := pricingResponseFromDomain(prices, "JPY", rates)
		require.Len(t, out, 1)
		require.Equal(t, int64(67), out[0].Amount)
	})

	t.Run("base currency passes through", func(t *testing.T) {
		out := pricingResponseFromDomain(prices, "USD", rates)
		require.Len(t, out, 1)
		require.Equal(t, int64(10000), out[0].Amount)
		require.Equal(t, "$100.00", out[0].Display)
	})

	t.Run("no prices gives empty list", func(t *testing.T) {
		out := pricingResponseFromDomain(nil, "EUR", rates)
		require.NotNil(t, out)
		require.Len(t, out, 0)
	})
}

func Test_splitFullName(t *testing.T) {
	t.Run("first and last", func(t *testing.T) {
		first, last := splitFullName("Ada Lovelace")
		require.NotNil(t, first)
		require.NotNil(t, last)
		require.Equal(t, "Ada", *first)
		require.Equal(t, "Lovelace", *last)
	})
	t.Run("single name", func(t *testing.T) {
		first, last := splitFullName("Ada")
		require.NotNil(t, first)
		require.Nil(t, last)
	})
	t.Run("empty", func(t *testing.T) {
		first, last := splitFullName("  ")
		require.Nil(t, first)
		require.Nil(t, last)
	})
}
