package db

import (
	"fmt"
	"stockfeed/internal/db/models/postgres/public/model"
	. "stockfeed/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// AddStockData bulk-inserts daily bars in a single statement. The conflict
// target is (company_symbol, date) and conflicts do nothing: the first write
// for a symbol-day wins permanently. An empty batch is a no-op.
func AddStockData(dbh qrm.Executable, bars []model.StockData) error {
	if len(bars) == 0 {
		return nil
	}

	_, err := addStockDataStatement(bars).Exec(dbh)
	if err != nil {
		return fmt.Errorf("failed to insert stock_data: %w", err)
	}

	return nil
}

func addStockDataStatement(bars []model.StockData) postgres.InsertStatement {
	t := StockData
	return t.INSERT(t.AllColumns).
		MODELS(bars).
		ON_CONFLICT(t.CompanySymbol, t.Date).
		DO_NOTHING()
}
