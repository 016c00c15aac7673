package journal

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Record(v Valuation) error {
	_, err := j.db.Exec(`
		INSERT INTO valuations
		(id, kind, formula, rate, periods, amount, flows, result, currency, created_at, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, string(v.Kind), v.Formula, v.Rate, v.Periods, v.Amount,
		v.Flows, nullResult(v.Result), v.Currency, v.CreatedAt.UTC(), v.Note,
	)
	return err
}

// nullResult maps NaN to NULL; SQLite has no NaN REAL. ±Inf is stored as is.
func nullResult(x float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: x, Valid: !math.IsNaN(x)}
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
