// Package schedule reads and writes cash-flow schedules as CSV.
//
// A schedule has a header naming a "time" and an "amount" column, in any
// order; other columns are ignored:
//
//	time,amount
//	0,-1000
//	1,550
//	2,605
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/tvm/config"
	"github.com/rustyeddy/tvm/tvm"
)

var ErrNoSchedule = errors.New("no cash flow schedule configured")

// ReadCSV parses a schedule. Blank lines are skipped.
func ReadCSV(r io.Reader) (tvm.CashFlow, error) {
	var cf tvm.CashFlow

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return cf, fmt.Errorf("read header: empty schedule")
	}
	if err != nil {
		return cf, fmt.Errorf("read header: %w", err)
	}

	ti, ai := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "time":
			ti = i
		case "amount":
			ai = i
		}
	}
	if ti < 0 || ai < 0 {
		return cf, fmt.Errorf("header %v: need time and amount columns", header)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tvm.CashFlow{}, fmt.Errorf("read schedule: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if ti >= len(rec) || ai >= len(rec) {
			return tvm.CashFlow{}, fmt.Errorf("line %d: expected %d columns, got %d", line, len(header), len(rec))
		}
		t, err := parseFloat(rec[ti])
		if err != nil {
			return tvm.CashFlow{}, fmt.Errorf("line %d: time: %w", line, err)
		}
		amt, err := parseFloat(rec[ai])
		if err != nil {
			return tvm.CashFlow{}, fmt.Errorf("line %d: amount: %w", line, err)
		}
		cf.Add(t, amt)
	}

	return cf, nil
}

// LoadCSV reads the schedule at path.
func LoadCSV(path string) (tvm.CashFlow, error) {
	f, err := os.Open(path)
	if err != nil {
		return tvm.CashFlow{}, fmt.Errorf("open schedule: %w", err)
	}
	defer f.Close()

	cf, err := ReadCSV(f)
	if err != nil {
		return tvm.CashFlow{}, fmt.Errorf("%s: %w", path, err)
	}
	return cf, nil
}

// WriteCSV writes cf with a time,amount header.
func WriteCSV(w io.Writer, cf tvm.CashFlow) error {
	if err := cf.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "amount"}); err != nil {
		return err
	}
	for i, amt := range cf.Amounts {
		if err := cw.Write([]string{f(cf.Times[i]), f(amt)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FromConfig returns the inline flows when present, otherwise the schedule
// file the config points at.
func FromConfig(c config.CashFlowConfig) (tvm.CashFlow, error) {
	if len(c.Flows) > 0 {
		return c.CashFlow(), nil
	}
	if c.File == "" {
		return tvm.CashFlow{}, ErrNoSchedule
	}
	return LoadCSV(c.File)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
