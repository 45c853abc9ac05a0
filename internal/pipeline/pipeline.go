package pipeline

//go:generate mockgen -source=pipeline.go -destination=mock_pipeline.go -package=pipeline

import (
	"context"
	"fmt"
	"log"
	"stockfeed/internal/alphavantage"
	"stockfeed/internal/db/models/postgres/public/model"
	"stockfeed/internal/normalize"

	"github.com/google/uuid"
)

type DataSource interface {
	CompanyOverview(ctx context.Context, symbol string) (map[string]any, error)
	DailySeries(ctx context.Context, symbol string) (*alphavantage.DailySeriesResponse, error)
}

type Store interface {
	UpsertStockMetadata(symbol string, record model.StockMetadata) error
	AddStockData(bars []model.StockData) error
}

// Summary reports how a batch run went. Failed counts symbols whose fetch
// failed; persistence problems are logged but do not fail a symbol.
type Summary struct {
	RunID         uuid.UUID
	Attempted     int
	Succeeded     int
	Failed        int
	FailedSymbols []string
}

// Runner executes the fetch → normalize → persist pipeline over a symbol
// list, one symbol at a time. A symbol's failure never aborts the batch.
type Runner struct {
	Source DataSource
	Store  Store
}

// Run processes every symbol exactly once and always runs the list to
// completion.
func (r Runner) Run(ctx context.Context, symbols []string) Summary {
	summary := Summary{RunID: uuid.New()}
	log.Printf("run %s started for %d symbols", summary.RunID, len(symbols))

	for _, symbol := range symbols {
		summary.Attempted++
		if err := r.runOne(ctx, symbol); err != nil {
			log.Printf("run %s: %s failed: %v", summary.RunID, symbol, err)
			summary.Failed++
			summary.FailedSymbols = append(summary.FailedSymbols, symbol)
			continue
		}
		summary.Succeeded++
	}

	return summary
}

func (r Runner) runOne(ctx context.Context, symbol string) error {
	log.Printf("fetching stock data for: %s", symbol)
	overview, err := r.Source.CompanyOverview(ctx, symbol)
	if err != nil {
		return fmt.Errorf("failed to fetch overview: %w", err)
	}
	series, err := r.Source.DailySeries(ctx, symbol)
	if err != nil {
		return fmt.Errorf("failed to fetch daily series: %w", err)
	}

	metadata := normalize.Metadata(overview)
	bars := normalize.DailyBars(series)

	if err := r.Store.UpsertStockMetadata(symbol, metadata); err != nil {
		log.Printf("failed to persist stock_metadata for %s: %v", symbol, err)
	}
	if err := r.Store.AddStockData(bars); err != nil {
		log.Printf("failed to persist stock_data for %s: %v", symbol, err)
	}

	return nil
}
