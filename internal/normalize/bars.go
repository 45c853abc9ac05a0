package normalize

import (
	"fmt"
	"log"
	"sort"
	"stockfeed/internal/alphavantage"
	"stockfeed/internal/db/models/postgres/public/model"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DailyBars flattens a TIME_SERIES_DAILY response into per-day StockData
// records tagged with the symbol from the metadata block. A response without
// the expected structure (error payloads, missing symbol) yields an empty
// slice so that a malformed reply for one symbol never aborts the batch.
// Bars with unparseable fields are dropped with a log line.
func DailyBars(resp *alphavantage.DailySeriesResponse) []model.StockData {
	bars := []model.StockData{}
	if resp == nil || len(resp.TimeSeries) == 0 {
		return bars
	}

	symbol := resp.MetaData["Symbol"]
	if symbol == "" {
		log.Printf("daily series response has no symbol in its metadata, dropping %d bars", len(resp.TimeSeries))
		return bars
	}

	createdAt := time.Now().UTC()
	for day, fields := range resp.TimeSeries {
		bar, err := dailyBar(symbol, day, fields, createdAt)
		if err != nil {
			log.Printf("dropping bar %s %s: %v", symbol, day, err)
			continue
		}
		bars = append(bars, *bar)
	}

	// map iteration order is random
	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Date.Before(bars[j].Date)
	})

	return bars
}

func dailyBar(symbol, day string, fields map[string]string, createdAt time.Time) (*model.StockData, error) {
	date, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return nil, fmt.Errorf("bad date key: %w", err)
	}

	prices := map[string]decimal.Decimal{}
	for _, field := range []string{"open", "high", "low", "close"} {
		price, err := decimal.NewFromString(fields[field])
		if err != nil {
			return nil, fmt.Errorf("could not parse %s from '%s': %w", field, fields[field], err)
		}
		prices[field] = price
	}

	volume, err := strconv.ParseInt(fields["volume"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("could not parse volume from '%s': %w", fields["volume"], err)
	}

	return &model.StockData{
		CompanySymbol: symbol,
		Date:          date,
		Open:          prices["open"],
		High:          prices["high"],
		Low:           prices["low"],
		Close:         prices["close"],
		Volume:        volume,
		CreatedAt:     createdAt,
	}, nil
}
