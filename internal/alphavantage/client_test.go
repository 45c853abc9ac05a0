package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_cleanResponseBody(t *testing.T) {
	t.Run("one digit", func(t *testing.T) {
		responseBytes := []byte(`{"01. hi": "hello"}`)
		out := cleanResponseBody(responseBytes)

		require.Equal(t, `{"hi": "hello"}`, string(out))
	})
	t.Run("two digits", func(t *testing.T) {
		responseBytes := []byte(`{"10. hi": "hello"}`)
		out := cleanResponseBody(responseBytes)

		require.Equal(t, `{"hi": "hello"}`, string(out))
	})
	t.Run("unnumbered keys untouched", func(t *testing.T) {
		responseBytes := []byte(`{"Time Series (Daily)": {"2. high": "1"}}`)
		out := cleanResponseBody(responseBytes)

		require.Equal(t, `{"Time Series (Daily)": {"high": "1"}}`, string(out))
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{
		HttpClient: server.Client(),
		ApiKey:     "test-key",
		BaseUrl:    server.URL,
	}
}

func TestSymbolSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "SYMBOL_SEARCH", r.URL.Query().Get("function"))
		require.Equal(t, "APPL", r.URL.Query().Get("keywords"))
		require.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Write([]byte(`{
			"bestMatches": [
				{"1. symbol": "AAPL", "2. name": "Apple Inc", "9. matchScore": "0.8889"},
				{"1. symbol": "APLE", "2. name": "Apple Hospitality REIT Inc", "9. matchScore": "0.6154"}
			]
		}`))
	})

	out, err := client.SymbolSearch(context.Background(), "APPL")
	require.NoError(t, err)
	require.Len(t, out.BestMatches, 2)
	require.Equal(t, "AAPL", out.BestMatches[0].Symbol)
	require.Equal(t, "Apple Inc", out.BestMatches[0].Name)
	require.Equal(t, "0.8889", out.BestMatches[0].MatchScore)
}

func TestCompanyOverview(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "OVERVIEW", r.URL.Query().Get("function"))
		require.Equal(t, "AAPL", r.URL.Query().Get("symbol"))

		w.Write([]byte(`{"Symbol": "AAPL", "Name": "Apple Inc", "PERatio": "29.3"}`))
	})

	out, err := client.CompanyOverview(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", out["Symbol"])
	require.Equal(t, "29.3", out["PERatio"])
}

func TestDailySeries(t *testing.T) {
	t.Run("parses cleaned series", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))

			w.Write([]byte(`{
				"Meta Data": {"1. Information": "Daily Prices", "2. Symbol": "AAPL"},
				"Time Series (Daily)": {
					"2025-08-01": {"1. open": "224.5", "2. high": "228.1", "3. low": "224.0", "4. close": "227.52", "5. volume": "39125400"}
				}
			}`))
		})

		out, err := client.DailySeries(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, "AAPL", out.MetaData["Symbol"])
		require.Equal(t, "224.5", out.TimeSeries["2025-08-01"]["open"])
		require.Equal(t, "39125400", out.TimeSeries["2025-08-01"]["volume"])
	})

	t.Run("error payload yields empty maps", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Error Message": "Invalid API call."}`))
		})

		out, err := client.DailySeries(context.Background(), "NOPE")
		require.NoError(t, err)
		require.Empty(t, out.MetaData)
		require.Empty(t, out.TimeSeries)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.DailySeries(context.Background(), "AAPL")
		require.ErrorContains(t, err, "status 503")
	})
}
