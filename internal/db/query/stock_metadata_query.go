package db

import (
	"fmt"
	"log"
	"stockfeed/internal/db/models/postgres/public/model"
	. "stockfeed/internal/db/models/postgres/public/table"
	"stockfeed/internal/normalize"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// UpsertStockMetadata writes one stock_metadata row keyed by symbol. Sentinel
// values are cleaned to NULL first; if nothing real survives the write is
// skipped entirely, so an empty provider payload never clears stored data.
// On conflict every field plus updated_at is replaced, but only when at least
// one field actually differs from the stored row, so updated_at keeps its
// "last real change" meaning across repeated runs.
func UpsertStockMetadata(dbh qrm.Executable, symbol string, m model.StockMetadata) error {
	if symbol == "" {
		log.Printf("symbol is empty, skipping stock_metadata write")
		return nil
	}
	if !normalize.CleanMetadata(&m) {
		log.Printf("no valid overview data for %s, skipping stock_metadata write", symbol)
		return nil
	}
	m.Symbol = symbol

	_, err := upsertStockMetadataStatement(m).Exec(dbh)
	if err != nil {
		return fmt.Errorf("failed to upsert stock_metadata for %s: %w", symbol, err)
	}

	return nil
}

func upsertStockMetadataStatement(m model.StockMetadata) InsertStatement {
	t := StockMetadata
	assignments := []ColumnAssigment{}
	changed := []BoolExpression{}
	for _, c := range stockMetadataColumns() {
		assignments = append(assignments, c.col.SET(c.excluded))
		changed = append(changed, c.col.IS_DISTINCT_FROM(c.excluded))
	}
	assignments = append(assignments, t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt))

	return t.INSERT(t.AllColumns).
		MODEL(m).
		ON_CONFLICT(t.Symbol).
		DO_UPDATE(
			SET(assignments...).
				WHERE(OR(changed...)),
		)
}

type stockMetadataColumn struct {
	col      ColumnString
	excluded ColumnString
}

// the descriptive columns, paired with their EXCLUDED counterparts for
// conflict assignments and distinctness checks
func stockMetadataColumns() []stockMetadataColumn {
	t := StockMetadata
	return []stockMetadataColumn{
		{t.Description, t.EXCLUDED.Description},
		{t.AssetType, t.EXCLUDED.AssetType},
		{t.Name, t.EXCLUDED.Name},
		{t.Exchange, t.EXCLUDED.Exchange},
		{t.Currency, t.EXCLUDED.Currency},
		{t.Country, t.EXCLUDED.Country},
		{t.Sector, t.EXCLUDED.Sector},
		{t.Industry, t.EXCLUDED.Industry},
		{t.Address, t.EXCLUDED.Address},
		{t.OfficialSite, t.EXCLUDED.OfficialSite},
		{t.FiscalYearEnd, t.EXCLUDED.FiscalYearEnd},
		{t.LatestQuarter, t.EXCLUDED.LatestQuarter},
		{t.MarketCapitalization, t.EXCLUDED.MarketCapitalization},
		{t.Ebitda, t.EXCLUDED.Ebitda},
		{t.PeRatio, t.EXCLUDED.PeRatio},
		{t.PegRatio, t.EXCLUDED.PegRatio},
		{t.BookValue, t.EXCLUDED.BookValue},
		{t.DividendPerShare, t.EXCLUDED.DividendPerShare},
		{t.DividendYield, t.EXCLUDED.DividendYield},
		{t.RevenuePerShareTtm, t.EXCLUDED.RevenuePerShareTtm},
		{t.ProfitMargin, t.EXCLUDED.ProfitMargin},
		{t.OperatingMarginTtm, t.EXCLUDED.OperatingMarginTtm},
		{t.ReturnOnAssetsTtm, t.EXCLUDED.ReturnOnAssetsTtm},
		{t.ReturnOnEquityTtm, t.EXCLUDED.ReturnOnEquityTtm},
		{t.RevenueTtm, t.EXCLUDED.RevenueTtm},
		{t.GrossProfitTtm, t.EXCLUDED.GrossProfitTtm},
		{t.QuarterlyEarningsGrowthYoy, t.EXCLUDED.QuarterlyEarningsGrowthYoy},
		{t.QuarterlyRevenueGrowthYoy, t.EXCLUDED.QuarterlyRevenueGrowthYoy},
		{t.PriceToBookRatio, t.EXCLUDED.PriceToBookRatio},
		{t.MovingAverage50Day, t.EXCLUDED.MovingAverage50Day},
		{t.MovingAverage200Day, t.EXCLUDED.MovingAverage200Day},
		{t.SharesOutstanding, t.EXCLUDED.SharesOutstanding},
	}
}
