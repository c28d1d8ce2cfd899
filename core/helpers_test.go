package core_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

// book returns a dataset row for id with every other field derived from it.
func book(id string) []string {
	row := make([]string, len(record.BookFields))
	for i, name := range record.BookFields {
		row[i] = name + " of " + id
	}
	row[0] = id
	return row
}

// csvLine encodes row exactly as the dataset file will contain it.
func csvLine(t *testing.T, row []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write(row))
	w.Flush()
	require.NoError(t, w.Error())

	return buf.Bytes()
}

// writeDataset writes a books dataset to a temp dir and returns its path
// together with the byte offset every row starts at.
func writeDataset(t *testing.T, rows ...[]string) (string, []uint64) {
	t.Helper()

	var data bytes.Buffer
	data.Write(csvLine(t, record.BookFields))

	offsets := make([]uint64, 0, len(rows))
	for _, row := range rows {
		offsets = append(offsets, uint64(data.Len()))
		data.Write(csvLine(t, row))
	}

	path := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, os.WriteFile(path, data.Bytes(), 0644))

	return path, offsets
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func indexPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "index.csv")
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}
