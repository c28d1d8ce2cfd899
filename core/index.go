package core

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

// Index is the in-memory form of the index file: one entry per dataset row,
// in dataset order.
//
// It is rebuilt from scratch on every build. Nothing ties it to the dataset
// it was built from, so a stale index silently yields wrong offsets.
type Index []record.IndexRecord

// Lookup returns the offset recorded for bookID.
//
// The whole index is scanned and the last matching entry wins, so with
// duplicate ids the offset of the last occurrence is returned.
func (idx Index) Lookup(bookID string) (uint64, bool) {
	var offset uint64
	found := false

	for _, entry := range idx {
		if entry.BookID == bookID {
			offset = entry.Offset
			found = true
		}
	}

	return offset, found
}

// Offset is Lookup without the found flag. A missing id resolves to 0, which
// makes an indexed lookup degrade to a scan from the start of the dataset.
func (idx Index) Offset(bookID string) uint64 {
	offset, _ := idx.Lookup(bookID)
	return offset
}

// BuildIndex scans the dataset once and records the starting byte offset of
// every row, keyed by book id.
func BuildIndex(dataPath string) (Index, error) {
	d, err := openDataset(dataPath)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	index := Index{}

	for {
		book, offset, err := d.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		index = append(index, record.IndexRecord{
			BookID: book.BookID,
			Offset: uint64(offset),
		})
	}

	return index, nil
}

// SaveIndex builds the index of dataPath and writes it to indexPath,
// replacing whatever was there. The dataset is fully scanned before the
// index file is touched; if writing fails the index file is left in an
// unspecified state.
func SaveIndex(dataPath, indexPath string) (Index, error) {
	index, err := BuildIndex(dataPath)
	if err != nil {
		return nil, err
	}

	if err := WriteIndex(indexPath, index); err != nil {
		return nil, err
	}

	return index, nil
}

// WriteIndex writes index to path as a header row followed by one
// "bookId,offset" row per entry.
func WriteIndex(path string, index Index) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, IndexFileMode)
	if err != nil {
		return ioError("create", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(record.IndexHeader); err != nil {
		f.Close()
		return ioError("write", path, err)
	}

	for _, entry := range index {
		if err := w.Write(record.EncodeIndexRecord(entry)); err != nil {
			f.Close()
			return ioError("write", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return ioError("write", path, err)
	}

	if err := f.Close(); err != nil {
		return ioError("close", path, err)
	}

	return nil
}

// LoadIndex reads the whole index file into memory.
func LoadIndex(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	reader := newCSVReader(f)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &FormatError{Path: path, Err: ErrMissingHeader}
		}
		return nil, indexReadError(path, 0, err)
	}
	if !record.IsIndexHeader(header) {
		return nil, &FormatError{Path: path, Err: ErrMissingHeader}
	}

	index := Index{}

	for {
		offset := reader.InputOffset()

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, indexReadError(path, offset, err)
		}

		entry, err := record.DecodeIndexRecord(row)
		if err != nil {
			return nil, &FormatError{Path: path, Offset: offset, Err: err}
		}

		index = append(index, entry)
	}

	return index, nil
}

func indexReadError(path string, offset int64, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Path: path, Offset: offset, Err: err}
	}
	return ioError("read", path, err)
}
