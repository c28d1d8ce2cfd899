package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotFound is returned when a full scan of the dataset ends without
// finding the requested book id.
var ErrNotFound = errors.New("book not found")

// ErrMissingHeader is returned when a dataset or index file has no header row.
var ErrMissingHeader = errors.New("missing header row")

// FormatError reports a row that could not be decoded: wrong field count,
// broken quoting, a missing header column or an unparsable offset.
type FormatError struct {
	Path   string
	Offset int64 // byte offset of the offending row
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed row in %s at byte %d: %v", e.Path, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to open, seek, read or write one of the files.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps a filesystem error for path as an *IOError.
func NewIOError(op, path string, err error) error {
	return ioError(op, path, err)
}

func ioError(op, path string, err error) error {
	// the path is already carried by IOError
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
