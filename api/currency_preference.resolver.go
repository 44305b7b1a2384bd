package api

import (
	"fmt"
	"strings"

	"courselab/internal"

	"github.com/gin-gonic/gin"
)

type currencyPreferenceResponse struct {
	CurrencyCode string `json:"currencyCode"`
}

type setCurrencyPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode"`
}

func (m ApiHandler) getCurrencyPreference(c *gin.Context) {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in to view currency preference"), c, 401)
		return
	}

	preference, err := m.CurrencyPreferenceRepository.Get(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// No stored preference means prices display in the base currency.
	currencyCode := internal.BaseCurrency
	if preference != nil {
		currencyCode = preference.CurrencyCode
	}

	c.JSON(200, currencyPreferenceResponse{
		CurrencyCode: currencyCode,
	})
}

func (m ApiHandler) setCurrencyPreference(c *gin.Context) {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in to set currency preference"), c, 401)
		return
	}

	var requestBody setCurrencyPreferenceRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	currencyCode := strings.ToUpper(requestBody.CurrencyCode)
	if !internal.IsSupportedCurrency(currencyCode) {
		returnErrorJsonCode(fmt.Errorf("unsupported currency code %q", requestBody.CurrencyCode), c, 400)
		return
	}

	preference, err := m.CurrencyPreferenceRepository.Set(userAccountID, currencyCode)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, currencyPreferenceResponse{
		CurrencyCode: preference.CurrencyCode,
	})
}
