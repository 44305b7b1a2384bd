package internal

import (
	"fmt"
	"testing"

	"courselab/internal/db/models/postgres/public/model"
	mock_repository "courselab/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_upsertRates(t *testing.T) {
	t.Run("stores supported currencies and skips the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ratesRepository := mock_repository.NewMockCurrencyRateRepository(ctrl)

		ratesRepository.EXPECT().Upsert(model.CurrencyRate{CurrencyCode: "EUR", RateToUsd: 0.92}).Return(nil)
		ratesRepository.EXPECT().Upsert(model.CurrencyRate{CurrencyCode: "JPY", RateToUsd: 148.0}).Return(nil)

		err := upsertRates(ratesRepository, map[string]float64{
			"EUR": 0.92,
			"JPY": 148.0,
			"XAU": 0.00049, // not a display currency
		})
		require.NoError(t, err)
	})

	t.Run("rejects non-positive rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ratesRepository := mock_repository.NewMockCurrencyRateRepository(ctrl)

		err := upsertRates(ratesRepository, map[string]float64{
			"EUR": -1,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "non-positive rate")
	})

	t.Run("aggregates repository failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ratesRepository := mock_repository.NewMockCurrencyRateRepository(ctrl)

		ratesRepository.EXPECT().Upsert(gomock.Any()).Return(fmt.Errorf("db down"))

		err := upsertRates(ratesRepository, map[string]float64{
			"EUR": 0.92,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "db down")
	})
}
