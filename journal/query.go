package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"
)

const selectValuation = `
	SELECT id, kind, formula, rate, periods, amount, flows, result, currency, created_at, note
	FROM valuations`

type scanner interface {
	Scan(dest ...any) error
}

func scanValuation(s scanner) (Valuation, error) {
	var (
		v      Valuation
		kind   string
		result sql.NullFloat64
	)
	err := s.Scan(
		&v.ID,
		&kind,
		&v.Formula,
		&v.Rate,
		&v.Periods,
		&v.Amount,
		&v.Flows,
		&result,
		&v.Currency,
		&v.CreatedAt,
		&v.Note,
	)
	v.Kind = Kind(kind)
	v.Result = math.NaN()
	if result.Valid {
		v.Result = result.Float64
	}
	return v, err
}

// Get returns a single valuation by ID.
func (j *SQLite) Get(id string) (Valuation, error) {
	row := j.db.QueryRow(selectValuation+` WHERE id = ?`, id)

	v, err := scanValuation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Valuation{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return Valuation{}, err
	}
	return v, nil
}

// ListBetween returns valuations created within [start, end), oldest first.
func (j *SQLite) ListBetween(start, end time.Time) ([]Valuation, error) {
	return j.list(selectValuation+`
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, id ASC`, start.UTC(), end.UTC())
}

// Recent returns up to limit valuations, newest first.
func (j *SQLite) Recent(limit int) ([]Valuation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	return j.list(selectValuation+`
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
}

func (j *SQLite) list(query string, args ...any) ([]Valuation, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Valuation
	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
