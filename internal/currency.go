package internal

import (
	"fmt"
	"strings"

	"courselab/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// All canonical prices are stored in USD cents; conversion only happens
// at display time.
const BaseCurrency = "USD"

type currencyFormat struct {
	Symbol       string
	UsesDecimals bool
}

// supportedCurrencies drives symbol lookup and decimal handling. Currencies
// without a dedicated glyph use a code-prefixed symbol (CA$, AU$, ...).
var supportedCurrencies = map[string]currencyFormat{
	"USD": {Symbol: "$", UsesDecimals: true},
	"EUR": {Symbol: "€", UsesDecimals: true},
	"GBP": {Symbol: "£", UsesDecimals: true},
	"JPY": {Symbol: "¥", UsesDecimals: false},
	"INR": {Symbol: "₹", UsesDecimals: true},
	"KRW": {Symbol: "₩", UsesDecimals: false},
	"VND": {Symbol: "₫", UsesDecimals: false},
	"BRL": {Symbol: "R$", UsesDecimals: true},
	"CAD": {Symbol: "CA$", UsesDecimals: true},
	"AUD": {Symbol: "AU$", UsesDecimals: true},
	"NZD": {Symbol: "NZ$", UsesDecimals: true},
	"MXN": {Symbol: "MX$", UsesDecimals: true},
	"SGD": {Symbol: "S$", UsesDecimals: true},
	"HKD": {Symbol: "HK$", UsesDecimals: true},
	"CHF": {Symbol: "CHF ", UsesDecimals: true},
	"SEK": {Symbol: "SEK ", UsesDecimals: true},
	"NOK": {Symbol: "NOK ", UsesDecimals: true},
	"DKK": {Symbol: "DKK ", UsesDecimals: true},
	"PLN": {Symbol: "zł ", UsesDecimals: true},
	"ZAR": {Symbol: "R ", UsesDecimals: true},
}

// ConvertPrice converts a USD minor-unit amount into the target currency's
// minor units using the supplied rate table. The converted amount is always
// floored so a displayed price can never exceed the exact conversion. If the
// target is USD or no rate is known, the amount passes through unchanged.
func ConvertPrice(amountMinorUnits int64, targetCurrency string, rates []model.CurrencyRate) int64 {
	code := strings.ToUpper(targetCurrency)
	if code == BaseCurrency {
		return amountMinorUnits
	}

	var rate *model.CurrencyRate
	for i := range rates {
		if strings.ToUpper(rates[i].CurrencyCode) == code {
			rate = &rates[i]
			break
		}
	}
	if rate == nil || rate.RateToUsd <= 0 {
		// permissive fallback to the base currency, not an error
		return amountMinorUnits
	}

	converted := decimal.NewFromInt(amountMinorUnits).
		Div(decimal.NewFromFloat(rate.RateToUsd))

	return converted.IntPart()
}

// FormatPrice renders a minor-unit amount for display. Zero-decimal
// currencies show the whole major-unit amount; everything else shows
// exactly two fractional digits.
func FormatPrice(amountMinorUnits int64, currency string) string {
	code := strings.ToUpper(currency)
	symbol := GetCurrencySymbol(code)

	if !UsesDecimals(code) {
		return fmt.Sprintf("%s%d", symbol, amountMinorUnits/100)
	}

	major := decimal.New(amountMinorUnits, -2)
	return fmt.Sprintf("%s%s", symbol, major.StringFixed(2))
}

func GetCurrencySymbol(currency string) string {
	if format, ok := supportedCurrencies[strings.ToUpper(currency)]; ok {
		return format.Symbol
	}
	return strings.ToUpper(currency) + " "
}

func IsSupportedCurrency(currency string) bool {
	_, ok := supportedCurrencies[strings.ToUpper(currency)]
	return ok
}

func UsesDecimals(currency string) bool {
	if format, ok := supportedCurrencies[strings.ToUpper(currency)]; ok {
		return format.UsesDecimals
	}
	return true
}
