package frankfurter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client for the free Frankfurter exchange-rate API
// (https://www.frankfurter.app). Rates come back keyed by currency code,
// expressed against the requested base.

const baseUrl = "https://api.frankfurter.app"

type LatestRatesResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

func GetLatestRates(base string) (*LatestRatesResponse, error) {
	client := http.DefaultClient
	url := fmt.Sprintf("%s/latest?from=%s", baseUrl, base)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	out := LatestRatesResponse{}
	err = json.Unmarshal(responseBytes, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}

	return &out, nil
}
