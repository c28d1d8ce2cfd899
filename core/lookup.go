package core

import (
	"fmt"
	"io"
	"math"

	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

// FindWithoutIndex scans the dataset from the first row and returns the
// first book whose id matches. The index file is never read.
func FindWithoutIndex(dataPath, bookID string) (*record.Book, error) {
	return FindFromOffset(dataPath, 0, bookID)
}

// FindUsingIndex loads the index, resolves the offset of bookID and reads
// the dataset from there.
//
// An id missing from the index resolves to offset 0, so the lookup falls
// back to a full scan instead of failing early. This hides a stale or
// incomplete index; callers that care should check Index.Lookup themselves.
func FindUsingIndex(dataPath, indexPath, bookID string) (*record.Book, error) {
	index, err := LoadIndex(indexPath)
	if err != nil {
		return nil, err
	}

	return FindFromOffset(dataPath, index.Offset(bookID), bookID)
}

// FindFromOffset seeks the dataset to offset and decodes rows forward until
// one with bookID is found. Offset 0 (or any offset inside the header)
// starts at the first row. Offsets beyond math.MaxInt64 are not file
// positions and fail with a FormatError.
func FindFromOffset(dataPath string, offset uint64, bookID string) (*record.Book, error) {
	if offset > math.MaxInt64 {
		return nil, &FormatError{Path: dataPath, Err: fmt.Errorf("%w: %d", record.ErrInvalidOffset, offset)}
	}

	d, err := openDataset(dataPath)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	if err := d.seek(int64(offset)); err != nil {
		return nil, err
	}

	for {
		book, _, err := d.next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, bookID)
		}
		if err != nil {
			return nil, err
		}

		if book.BookID == bookID {
			return book, nil
		}
	}
}
