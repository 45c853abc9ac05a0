package normalize

import (
	"stockfeed/internal/db/models/postgres/public/model"
	"time"
)

// overviewFields is the fixed set of OVERVIEW fields this system tracks, in
// the order Alpha Vantage documents them.
var overviewFields = []string{
	"Description", "AssetType", "Name", "Exchange", "Currency", "Country", "Sector",
	"Industry", "Address", "OfficialSite", "FiscalYearEnd", "LatestQuarter",
	"MarketCapitalization", "EBITDA", "PERatio", "PEGRatio", "BookValue",
	"DividendPerShare", "DividendYield", "RevenuePerShareTTM", "ProfitMargin",
	"OperatingMarginTTM", "ReturnOnAssetsTTM", "ReturnOnEquityTTM", "RevenueTTM",
	"GrossProfitTTM", "QuarterlyEarningsGrowthYOY", "QuarterlyRevenueGrowthYOY",
	"PriceToBookRatio", "50DayMovingAverage", "200DayMovingAverage", "SharesOutstanding",
}

func metadataSlots(m *model.StockMetadata) map[string]**string {
	return map[string]**string{
		"Description":                &m.Description,
		"AssetType":                  &m.AssetType,
		"Name":                       &m.Name,
		"Exchange":                   &m.Exchange,
		"Currency":                   &m.Currency,
		"Country":                    &m.Country,
		"Sector":                     &m.Sector,
		"Industry":                   &m.Industry,
		"Address":                    &m.Address,
		"OfficialSite":               &m.OfficialSite,
		"FiscalYearEnd":              &m.FiscalYearEnd,
		"LatestQuarter":              &m.LatestQuarter,
		"MarketCapitalization":       &m.MarketCapitalization,
		"EBITDA":                     &m.Ebitda,
		"PERatio":                    &m.PeRatio,
		"PEGRatio":                   &m.PegRatio,
		"BookValue":                  &m.BookValue,
		"DividendPerShare":           &m.DividendPerShare,
		"DividendYield":              &m.DividendYield,
		"RevenuePerShareTTM":         &m.RevenuePerShareTtm,
		"ProfitMargin":               &m.ProfitMargin,
		"OperatingMarginTTM":         &m.OperatingMarginTtm,
		"ReturnOnAssetsTTM":          &m.ReturnOnAssetsTtm,
		"ReturnOnEquityTTM":          &m.ReturnOnEquityTtm,
		"RevenueTTM":                 &m.RevenueTtm,
		"GrossProfitTTM":             &m.GrossProfitTtm,
		"QuarterlyEarningsGrowthYOY": &m.QuarterlyEarningsGrowthYoy,
		"QuarterlyRevenueGrowthYOY":  &m.QuarterlyRevenueGrowthYoy,
		"PriceToBookRatio":           &m.PriceToBookRatio,
		"50DayMovingAverage":         &m.MovingAverage50Day,
		"200DayMovingAverage":        &m.MovingAverage200Day,
		"SharesOutstanding":          &m.SharesOutstanding,
	}
}

// Metadata maps a raw OVERVIEW payload into a StockMetadata record. Fields
// absent from the payload are filled with the "NA" sentinel so the record is
// always syntactically complete. When the payload has no usable Symbol the
// record degrades: Symbol stays empty and every descriptive field stays nil,
// which downstream persistence treats as a skip. Never errors.
func Metadata(raw map[string]any) model.StockMetadata {
	now := time.Now().UTC()
	m := model.StockMetadata{
		CreatedAt: now,
		UpdatedAt: now,
	}

	symbol, ok := raw["Symbol"].(string)
	if !ok || symbol == "" {
		return m
	}
	m.Symbol = symbol

	slots := metadataSlots(&m)
	for _, field := range overviewFields {
		value, ok := raw[field].(string)
		if !ok {
			value = "NA"
		}
		*slots[field] = &value
	}

	return m
}
