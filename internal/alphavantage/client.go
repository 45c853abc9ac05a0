package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
)

const defaultBaseUrl = "https://www.alphavantage.co"

// Client calls the Alpha Vantage query API. The zero value is not usable;
// at minimum ApiKey must be set.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	// BaseUrl overrides the Alpha Vantage endpoint, used by tests.
	BaseUrl string
}

type BestMatch struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Region     string `json:"region"`
	Currency   string `json:"currency"`
	MatchScore string `json:"matchScore"`
}

type SymbolSearchResponse struct {
	BestMatches []BestMatch `json:"bestMatches"`
}

// DailySeriesResponse holds the TIME_SERIES_DAILY payload. TimeSeries maps a
// date string (2006-01-02) to per-day fields keyed "open", "high", "low",
// "close", "volume" once the numbered prefixes are stripped. An error payload
// from the API unmarshals into nil maps.
type DailySeriesResponse struct {
	MetaData   map[string]string            `json:"Meta Data"`
	TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
}

// SymbolSearch runs a fuzzy symbol lookup (function=SYMBOL_SEARCH).
func (c Client) SymbolSearch(ctx context.Context, keywords string) (*SymbolSearchResponse, error) {
	body, err := c.get(ctx, url.Values{
		"function": []string{"SYMBOL_SEARCH"},
		"keywords": []string{keywords},
	})
	if err != nil {
		return nil, err
	}

	var responseJson SymbolSearchResponse
	err = json.Unmarshal(body, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse symbol search response: %w", err)
	}

	return &responseJson, nil
}

// CompanyOverview fetches company fundamentals (function=OVERVIEW). The
// response is left as a raw map; field extraction happens in the normalizer.
func (c Client) CompanyOverview(ctx context.Context, symbol string) (map[string]any, error) {
	body, err := c.get(ctx, url.Values{
		"function": []string{"OVERVIEW"},
		"symbol":   []string{symbol},
	})
	if err != nil {
		return nil, err
	}

	responseJson := map[string]any{}
	err = json.Unmarshal(body, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overview response: %w", err)
	}

	return responseJson, nil
}

// DailySeries fetches the daily OHLCV history (function=TIME_SERIES_DAILY).
func (c Client) DailySeries(ctx context.Context, symbol string) (*DailySeriesResponse, error) {
	body, err := c.get(ctx, url.Values{
		"function": []string{"TIME_SERIES_DAILY"},
		"symbol":   []string{symbol},
	})
	if err != nil {
		return nil, err
	}

	var responseJson DailySeriesResponse
	err = json.Unmarshal(body, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse daily series response: %w", err)
	}

	return &responseJson, nil
}

func (c Client) get(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.ApiKey)
	requestUrl := fmt.Sprintf("%s/query?%s", c.baseUrl(), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage %s returned status %d", query.Get("function"), response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// API uses odd format which includes numbers in JSON keys
	return cleanResponseBody(responseBytes), nil
}

func (c Client) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	return http.DefaultClient
}

func (c Client) baseUrl() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return defaultBaseUrl
}

func cleanResponseBody(bytes []byte) []byte {
	r := regexp.MustCompile("\"[0-9]+\\. ")
	return r.ReplaceAll(bytes, []byte("\""))
}
