package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "valuations.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"id", "kind", "formula", "rate", "periods", "amount", "flows", "result", "currency", "created_at", "note"}, rows[0])
}

func TestCSVRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "valuations.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.Record(sampleValuation("V1", at)))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"V1", "pv", "cashflow", "0.05", "0", "0", "3", "272.3248029", "USD", "2024-01-02T03:04:05Z", "level annuity"}, rows[1])
}

func TestCSVAppendsWithoutSecondHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "valuations.csv")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, id := range []string{"V1", "V2"} {
		j, err := NewCSV(path)
		require.NoError(t, err)
		require.NoError(t, j.Record(sampleValuation(id, at)))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "V1", rows[1][0])
	assert.Equal(t, "V2", rows[2][0])
}

func TestCSVBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "valuations.csv"))
	assert.Error(t, err)
}
