package core

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

// datasetReader decodes books from the dataset one row at a time while
// keeping track of the byte offset each row starts at.
type datasetReader struct {
	path      string
	file      *os.File
	reader    *csv.Reader
	schema    *record.Schema
	base      int64 // file position the current csv reader started from
	headerEnd int64 // file position right after the header row
}

func openDataset(path string) (*datasetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}

	d := &datasetReader{
		path:   path,
		file:   f,
		reader: newCSVReader(f),
	}

	header, err := d.reader.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, &FormatError{Path: path, Err: ErrMissingHeader}
		}
		return nil, d.readError(0, err)
	}

	schema, err := record.NewSchema(header)
	if err != nil {
		f.Close()
		return nil, &FormatError{Path: path, Err: err}
	}

	d.schema = schema
	d.headerEnd = d.reader.InputOffset()

	return d, nil
}

// seek repositions the reader at offset. The header is never re-read, the
// schema decoded at open time is reused. Offsets that point into the header
// are moved to the first row.
func (d *datasetReader) seek(offset int64) error {
	if offset < d.headerEnd {
		offset = d.headerEnd
	}

	if _, err := d.file.Seek(offset, io.SeekStart); err != nil {
		return ioError("seek", d.path, err)
	}

	d.reader = newCSVReader(d.file)
	d.base = offset

	return nil
}

// next decodes the next book and returns it together with the offset its
// row starts at. It returns io.EOF once the dataset is exhausted.
func (d *datasetReader) next() (*record.Book, int64, error) {
	offset := d.base + d.reader.InputOffset()

	row, err := d.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, offset, io.EOF
		}
		return nil, offset, d.readError(offset, err)
	}

	book, err := d.schema.Decode(row)
	if err != nil {
		return nil, offset, &FormatError{Path: d.path, Offset: offset, Err: err}
	}

	return book, offset, nil
}

func (d *datasetReader) readError(offset int64, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Path: d.path, Offset: offset, Err: err}
	}
	return ioError("read", d.path, err)
}

func (d *datasetReader) Close() error {
	return d.file.Close()
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	// Field count is checked against the header by the schema
	reader.FieldsPerRecord = -1
	return reader
}
