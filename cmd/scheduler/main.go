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
	"time"

	"github.com/go-co-op/gocron"
	_ "github.com/lib/pq"
)

// Runs the ETL batch on a daily cadence. Singleton mode guarantees runs never
// overlap; the pipeline itself does not coordinate concurrent invocations.
func main() {
	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	at := os.Getenv("ETL_SCHEDULE_AT")
	if at == "" {
		at = "06:00"
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()
	_, err = scheduler.Every(1).Day().At(at).Do(func() {
		if err := runETL(secrets); err != nil {
			log.Printf("scheduled run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("scheduler started, daily run at %s UTC", at)
	scheduler.StartBlocking()
}

func runETL(secrets *util.Secrets) error {
	dbConn, err := db.New(secrets.PostgresConnectionString())
	if err != nil {
		return err
	}
	defer dbConn.Close()

	client := alphavantage.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.AlphaVantageKey,
	}

	resolver := symbols.Resolver{
		Searcher:           client,
		FallbackToDefaults: secrets.SymbolSearchFallback,
	}
	symbolList, err := resolver.Resolve(context.Background(), os.Getenv("ETL_SYMBOL"))
	if err != nil {
		return err
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
	return nil
}
