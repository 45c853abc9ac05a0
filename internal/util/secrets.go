package util

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Secrets carries the Alpha Vantage API key and the Postgres connection
// parameters, loaded from the environment at process start.
type Secrets struct {
	AlphaVantageKey      string
	DbHost               string
	DbPort               string
	DbName               string
	DbUser               string
	DbPassword           string
	SymbolSearchFallback bool
}

// LoadSecrets reads configuration from an optional .env file and the
// environment. Only the API key is mandatory; connection parameters fall back
// to local defaults.
func LoadSecrets() (*Secrets, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	secrets := &Secrets{
		AlphaVantageKey:      os.Getenv("ALPHA_VANTAGE_API_KEY"),
		DbHost:               getenv("DB_HOST", "localhost"),
		DbPort:               getenv("DB_PORT", "5432"),
		DbName:               getenv("DB_NAME", "stockfeed"),
		DbUser:               getenv("DB_USER", "postgres"),
		DbPassword:           os.Getenv("DB_PASSWORD"),
		SymbolSearchFallback: os.Getenv("SYMBOL_SEARCH_FALLBACK") == "true",
	}

	if secrets.AlphaVantageKey == "" {
		return nil, errors.New("ALPHA_VANTAGE_API_KEY is not set")
	}

	return secrets, nil
}

func (s Secrets) PostgresConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		s.DbUser, s.DbPassword, s.DbHost, s.DbPort, s.DbName,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
