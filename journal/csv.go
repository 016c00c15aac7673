package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"id", "kind", "formula", "rate", "periods", "amount", "flows", "result", "currency", "created_at", "note"}

// CSV appends valuations to a single CSV file. The header is written only
// when the file is new or empty.
type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) Record(v Valuation) error {
	err := j.w.Write([]string{
		v.ID,
		string(v.Kind),
		v.Formula,
		ff(v.Rate),
		ff(v.Periods),
		ff(v.Amount),
		strconv.Itoa(v.Flows),
		ff(v.Result),
		v.Currency,
		v.CreatedAt.UTC().Format(time.RFC3339Nano),
		v.Note,
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

func ff(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
