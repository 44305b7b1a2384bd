package internal

import (
	"fmt"
	"os"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/repository"
	"courselab/pkg/frankfurter"

	"github.com/gocarina/gocsv"
)

// UpdateCurrencyRates refreshes the currency_rate table from the rates
// provider. Only currencies we can format are stored; the stored value is
// the provider's USD-base rate, which is exactly the divisor ConvertPrice
// applies.
func UpdateCurrencyRates(ratesRepository repository.CurrencyRateRepository) error {
	latest, err := frankfurter.GetLatestRates(BaseCurrency)
	if err != nil {
		return fmt.Errorf("failed to fetch latest rates: %w", err)
	}

	return upsertRates(ratesRepository, latest.Rates)
}

func upsertRates(ratesRepository repository.CurrencyRateRepository, rates map[string]float64) error {
	errors := []error{}
	updated := 0

	for code, rate := range rates {
		if _, ok := supportedCurrencies[code]; !ok {
			continue
		}
		if rate <= 0 {
			errors = append(errors, fmt.Errorf("refusing non-positive rate %f for %s", rate, code))
			continue
		}
		err := ratesRepository.Upsert(model.CurrencyRate{
			CurrencyCode: code,
			RateToUsd:    rate,
		})
		if err != nil {
			errors = append(errors, err)
			continue
		}
		updated++
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d currency rates. first err: %w", len(errors), len(errors)+updated, errors[0])
	}

	return nil
}

type currencyRateCsvRow struct {
	CurrencyCode string  `csv:"currency_code"`
	RateToUsd    float64 `csv:"rate_to_usd"`
}

// SeedCurrencyRatesFromCsv loads rates from a local csv, for bootstrapping
// environments that can't reach the rates provider.
func SeedCurrencyRatesFromCsv(path string, ratesRepository repository.CurrencyRateRepository) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open rates csv: %w", err)
	}
	defer f.Close()

	rows := []*currencyRateCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse rates csv: %w", err)
	}

	rates := map[string]float64{}
	for _, row := range rows {
		rates[row.CurrencyCode] = row.RateToUsd
	}

	return upsertRates(ratesRepository, rates)
}
