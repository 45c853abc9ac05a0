package symbols

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=symbols

import (
	"context"
	"fmt"
	"log"
	"stockfeed/internal/alphavantage"
	"stockfeed/internal/util"
	"strings"
)

// DefaultSymbols is processed when no candidate symbol is supplied.
var DefaultSymbols = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "IBM"}

// maxBestMatches caps how many search results stand in for an unresolved
// candidate.
const maxBestMatches = 4

type SymbolSearcher interface {
	SymbolSearch(ctx context.Context, keywords string) (*alphavantage.SymbolSearchResponse, error)
}

type Resolver struct {
	Searcher SymbolSearcher
	// Defaults overrides DefaultSymbols when set.
	Defaults []string
	// FallbackToDefaults makes a failed or empty symbol search resolve to the
	// default list instead of failing the run.
	FallbackToDefaults bool
}

// Resolve turns an optional candidate symbol into the list of symbols to
// process. An empty candidate resolves to the defaults. A known candidate
// resolves to itself; an unrecognized one resolves to the best matches from
// symbol search, in response order.
func (r Resolver) Resolve(ctx context.Context, candidate string) ([]string, error) {
	if candidate == "" {
		log.Println("no symbol provided, falling back to default symbol list")
		return r.defaults(), nil
	}
	candidate = strings.ToUpper(candidate)

	response, err := r.Searcher.SymbolSearch(ctx, candidate)
	if err != nil {
		if r.FallbackToDefaults {
			log.Printf("symbol search for %s failed (%v), falling back to default symbol list", candidate, err)
			return r.defaults(), nil
		}
		return nil, fmt.Errorf("symbol search for %s failed: %w", candidate, err)
	}
	if len(response.BestMatches) == 0 {
		if r.FallbackToDefaults {
			log.Printf("symbol search for %s returned no matches, falling back to default symbol list", candidate)
			return r.defaults(), nil
		}
		return nil, fmt.Errorf("symbol search for %s returned no matches", candidate)
	}

	if strings.EqualFold(response.BestMatches[0].Symbol, candidate) {
		log.Printf("provided symbol is correct, fetching data for %s", candidate)
		return []string{candidate}, nil
	}

	seen := util.NewSet()
	matches := []string{}
	for _, match := range response.BestMatches {
		if len(matches) == maxBestMatches {
			break
		}
		symbol := strings.ToUpper(match.Symbol)
		if seen.Contains(symbol) {
			continue
		}
		seen.Add(symbol)
		matches = append(matches, symbol)
	}

	log.Printf("provided symbol %s is not a known symbol, fetching data for best matches: %v", candidate, matches)
	return matches, nil
}

func (r Resolver) defaults() []string {
	defaults := r.Defaults
	if len(defaults) == 0 {
		defaults = DefaultSymbols
	}
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}
