package normalize

import (
	"stockfeed/internal/alphavantage"
	"stockfeed/internal/db/models/postgres/public/model"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDailyBars(t *testing.T) {
	t.Run("missing time series yields empty slice", func(t *testing.T) {
		require.Empty(t, DailyBars(nil))
		require.Empty(t, DailyBars(&alphavantage.DailySeriesResponse{}))
		// error payloads unmarshal into nil maps
		require.Empty(t, DailyBars(&alphavantage.DailySeriesResponse{
			MetaData: map[string]string{"Symbol": "AAPL"},
		}))
	})

	t.Run("missing symbol yields empty slice", func(t *testing.T) {
		out := DailyBars(&alphavantage.DailySeriesResponse{
			TimeSeries: map[string]map[string]string{
				"2025-08-01": {"open": "1", "high": "2", "low": "0.5", "close": "1.5", "volume": "100"},
			},
		})
		require.Empty(t, out)
	})

	t.Run("flattens one record per day, date ascending", func(t *testing.T) {
		out := DailyBars(&alphavantage.DailySeriesResponse{
			MetaData: map[string]string{"Symbol": "AAPL"},
			TimeSeries: map[string]map[string]string{
				"2025-08-04": {"open": "227.9", "high": "230.0", "low": "226.2", "close": "229.35", "volume": "44155000"},
				"2025-08-01": {"open": "224.5", "high": "228.1", "low": "224.0", "close": "227.52", "volume": "39125400"},
			},
		})

		expected := []model.StockData{
			{
				CompanySymbol: "AAPL",
				Date:          time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
				Open:          decimal.RequireFromString("224.5"),
				High:          decimal.RequireFromString("228.1"),
				Low:           decimal.RequireFromString("224.0"),
				Close:         decimal.RequireFromString("227.52"),
				Volume:        39125400,
			},
			{
				CompanySymbol: "AAPL",
				Date:          time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC),
				Open:          decimal.RequireFromString("227.9"),
				High:          decimal.RequireFromString("230.0"),
				Low:           decimal.RequireFromString("226.2"),
				Close:         decimal.RequireFromString("229.35"),
				Volume:        44155000,
			},
		}

		require.Equal(t, "", cmp.Diff(
			expected,
			out,
			cmpopts.IgnoreFields(model.StockData{}, "CreatedAt"),
		))
		require.Equal(t, out[0].CreatedAt, out[1].CreatedAt)
	})

	t.Run("bars with unparseable fields are dropped", func(t *testing.T) {
		out := DailyBars(&alphavantage.DailySeriesResponse{
			MetaData: map[string]string{"Symbol": "AAPL"},
			TimeSeries: map[string]map[string]string{
				"2025-08-01": {"open": "224.5", "high": "228.1", "low": "224.0", "close": "227.52", "volume": "39125400"},
				"2025-08-04": {"open": "not-a-number", "high": "230.0", "low": "226.2", "close": "229.35", "volume": "44155000"},
				"2025-08-05": {"open": "228.0", "high": "230.0", "low": "226.2", "close": "229.35", "volume": "lots"},
				"not-a-date": {"open": "1", "high": "1", "low": "1", "close": "1", "volume": "1"},
			},
		})

		require.Len(t, out, 1)
		require.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), out[0].Date)
	})
}
