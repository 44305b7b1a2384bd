package api

import (
	"time"

	"courselab/internal"

	"github.com/gin-gonic/gin"
)

type currencyRateResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	RateToUsd    float64   `json:"rateToUsd"`
	Symbol       string    `json:"symbol"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (m ApiHandler) getCurrencyRates(c *gin.Context) {
	rates, err := m.CurrencyRateRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []currencyRateResponse{}
	for _, r := range rates {
		out = append(out, currencyRateResponse{
			CurrencyCode: r.CurrencyCode,
			RateToUsd:    r.RateToUsd,
			Symbol:       internal.GetCurrencySymbol(r.CurrencyCode),
			UpdatedAt:    r.UpdatedAt,
		})
	}

	c.JSON(200, out)
}
