package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"stockfeed/internal/alphavantage"
	db "stockfeed/internal/db/query"
	"stockfeed/internal/pipeline"
	"stockfeed/internal/symbols"
	"stockfeed/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(secrets.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer dbConn.Close()

	client := alphavantage.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.AlphaVantageKey,
	}

	candidate := ""
	if len(os.Args) == 2 {
		candidate = os.Args[1]
	}

	resolver := symbols.Resolver{
		Searcher:           client,
		FallbackToDefaults: secrets.SymbolSearchFallback,
	}
	symbolList, err := resolver.Resolve(context.Background(), candidate)
	if err != nil {
		log.Fatal(err)
	}

	runner := pipeline.Runner{
		Source: client,
		Store:  db.Deps{Db: dbConn},
	}
	summary := runner.Run(context.Background(), symbolList)
	log.Printf(
		"run %s finished: %d attempted, %d succeeded, %d failed %v",
		summary.RunID, summary.Attempted, summary.Succeeded, summary.Failed, summary.FailedSymbols,
	)
}
