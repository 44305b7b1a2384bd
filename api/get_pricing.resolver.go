package api

import (
	"strings"

	"courselab/internal"
	"courselab/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type coursePriceResponse struct {
	CoursePriceID uuid.UUID `json:"coursePriceID"`
	CourseName    string    `json:"courseName"`
	CurrencyCode  string    `json:"currencyCode"`
	Amount        int64     `json:"amount"`
	Display       string    `json:"display"`
}

// getPricing lists course prices converted into the display currency.
// Resolution order: explicit ?currency= param, then the logged-in
// user's stored preference, then the base currency.
func (m ApiHandler) getPricing(c *gin.Context) {
	currencyCode := strings.ToUpper(c.Query("currency"))
	if currencyCode == "" {
		if userAccountID, ok := userAccountIDFromContext(c); ok {
			preference, err := m.CurrencyPreferenceRepository.Get(userAccountID)
			if err != nil {
				returnErrorJson(err, c)
				return
			}
			if preference != nil {
				currencyCode = preference.CurrencyCode
			}
		}
	}
	if currencyCode == "" {
		currencyCode = internal.BaseCurrency
	}

	prices, err := m.CoursePriceRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rates, err := m.CurrencyRateRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, pricingResponseFromDomain(prices, currencyCode, rates))
}

func pricingResponseFromDomain(prices []model.CoursePrice, currencyCode string, rates []model.CurrencyRate) []coursePriceResponse {
	out := []coursePriceResponse{}
	for _, p := range prices {
		amount := internal.ConvertPrice(p.AmountCents, currencyCode, rates)
		out = append(out, coursePriceResponse{
			CoursePriceID: p.CoursePriceID,
			CourseName:    p.CourseName,
			CurrencyCode:  currencyCode,
			Amount:        amount,
			Display:       internal.FormatPrice(amount, currencyCode),
		})
	}
	return out
}
