package db

import (
	"stockfeed/internal/db/models/postgres/public/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bar(symbol string, day string) model.StockData {
	date, _ := time.Parse(time.DateOnly, day)
	return model.StockData{
		CompanySymbol: symbol,
		Date:          date,
		Open:          decimal.NewFromInt(1),
		High:          decimal.NewFromInt(2),
		Low:           decimal.NewFromInt(1),
		Close:         decimal.NewFromInt(2),
		Volume:        100,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestAddStockDataEmptyBatch(t *testing.T) {
	// no statement may run for an empty batch; nil executable proves it
	require.NoError(t, AddStockData(nil, nil))
	require.NoError(t, AddStockData(nil, []model.StockData{}))
}

func TestAddStockDataStatement(t *testing.T) {
	bars := []model.StockData{
		bar("AAPL", "2025-08-01"),
		bar("AAPL", "2025-08-04"),
	}
	query, args := addStockDataStatement(bars).Sql()

	require.Contains(t, query, `INSERT INTO public.stock_data`)
	require.Contains(t, query, `ON CONFLICT (company_symbol, date)`)
	require.Contains(t, query, `DO NOTHING`)
	// 8 columns per row, duplicates are left for the conflict clause to drop
	require.Len(t, args, 16)
}
