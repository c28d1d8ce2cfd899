package record

import (
	"errors"
	"fmt"
	"strconv"
)

// IndexRecord is one row of the index file: a book id and the byte offset
// in the dataset where that book's row starts.
type IndexRecord struct {
	BookID string
	Offset uint64
}

// IndexHeader is the header row written at the top of every index file.
var IndexHeader = []string{"bookId", "offset"}

var ErrInvalidOffset = errors.New("invalid offset")

// EncodeIndexRecord turns an IndexRecord into its two text fields.
func EncodeIndexRecord(r IndexRecord) []string {
	return []string{r.BookID, strconv.FormatUint(r.Offset, 10)}
}

// DecodeIndexRecord parses an index row produced by EncodeIndexRecord.
func DecodeIndexRecord(row []string) (IndexRecord, error) {
	if len(row) != len(IndexHeader) {
		return IndexRecord{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(row), len(IndexHeader))
	}

	// offsets are file positions, which cannot exceed math.MaxInt64
	offset, err := strconv.ParseUint(row[1], 10, 63)
	if err != nil {
		return IndexRecord{}, fmt.Errorf("%w %q: %w", ErrInvalidOffset, row[1], err)
	}

	return IndexRecord{BookID: row[0], Offset: offset}, nil
}

// IsIndexHeader reports whether row is the index file header.
func IsIndexHeader(row []string) bool {
	if len(row) != len(IndexHeader) {
		return false
	}
	for i := range row {
		if row[i] != IndexHeader[i] {
			return false
		}
	}
	return true
}
