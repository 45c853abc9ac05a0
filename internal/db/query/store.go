package db

import (
	"database/sql"
	"stockfeed/internal/db/models/postgres/public/model"
)

// Deps binds the query functions to a shared connection so the pipeline can
// depend on an interface it defines. Each call runs as its own implicit
// transaction; there is deliberately no atomicity across symbols or tables.
type Deps struct {
	Db *sql.DB
}

func (d Deps) UpsertStockMetadata(symbol string, m model.StockMetadata) error {
	return UpsertStockMetadata(d.Db, symbol, m)
}

func (d Deps) AddStockData(bars []model.StockData) error {
	return AddStockData(d.Db, bars)
}
