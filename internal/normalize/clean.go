package normalize

import "stockfeed/internal/db/models/postgres/public/model"

// missingTokens are the placeholder strings Alpha Vantage uses for fields it
// has no value for. They all collapse to nil at the persistence boundary.
var missingTokens = map[string]struct{}{
	"None": {},
	"":     {},
	"-":    {},
	"_":    {},
	"NA":   {},
	"N/A":  {},
}

// CleanField maps a missing-value sentinel to nil and passes everything else
// through untouched.
func CleanField(v *string) *string {
	if v == nil {
		return nil
	}
	if _, ok := missingTokens[*v]; ok {
		return nil
	}
	return v
}

// CleanMetadata cleans every descriptive field of m in place and reports
// whether any real value survived. A false return means the provider had
// nothing for this symbol and no row should be written.
func CleanMetadata(m *model.StockMetadata) bool {
	hasValue := false
	for _, slot := range metadataSlots(m) {
		*slot = CleanField(*slot)
		if *slot != nil {
			hasValue = true
		}
	}
	return hasValue
}
