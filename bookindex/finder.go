package bookindex

import (
	"time"

	"github.com/0xRadioAc7iv/go-bookindex/core"
	"github.com/0xRadioAc7iv/go-bookindex/internal"
	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

type Book = record.Book

type Index = core.Index

// Finder runs lookups against one dataset and its index file.
type Finder struct {
	cfg *internal.Config
}

// Result is the outcome of a timed lookup.
type Result struct {
	Book    *Book
	Elapsed time.Duration

	// Offset is where the dataset scan started. Indexed reports whether the
	// id was present in the index; when it is false the offset fell back to 0.
	Offset  uint64
	Indexed bool
}

func New(opts ...Option) *Finder {
	cfg := internal.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	return &Finder{cfg: cfg}
}

func (f *Finder) DataPath() string {
	return f.cfg.DataPath
}

func (f *Finder) IndexPath() string {
	return f.cfg.IndexPath
}

// Build rescans the dataset and rewrites the index file.
func (f *Finder) Build() (Index, error) {
	return core.SaveIndex(f.cfg.DataPath, f.cfg.IndexPath)
}

// LoadIndex reads the index file into memory.
func (f *Finder) LoadIndex() (Index, error) {
	return core.LoadIndex(f.cfg.IndexPath)
}

// FindWithoutIndex scans the dataset from the start.
func (f *Finder) FindWithoutIndex(bookID string) (*Result, error) {
	start := time.Now()

	book, err := core.FindWithoutIndex(f.cfg.DataPath, bookID)
	if err != nil {
		return nil, err
	}

	return &Result{Book: book, Elapsed: time.Since(start)}, nil
}

// FindUsingIndex loads the index file, resolves the id's offset and reads
// the dataset from there. The elapsed time includes loading the index.
func (f *Finder) FindUsingIndex(bookID string) (*Result, error) {
	start := time.Now()

	index, err := core.LoadIndex(f.cfg.IndexPath)
	if err != nil {
		return nil, err
	}

	return f.find(index, bookID, start)
}

// FindInIndex is FindUsingIndex with an index that is already in memory.
func (f *Finder) FindInIndex(index Index, bookID string) (*Result, error) {
	return f.find(index, bookID, time.Now())
}

func (f *Finder) find(index Index, bookID string, start time.Time) (*Result, error) {
	offset, found := index.Lookup(bookID)

	book, err := core.FindFromOffset(f.cfg.DataPath, offset, bookID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Book:    book,
		Elapsed: time.Since(start),
		Offset:  offset,
		Indexed: found,
	}, nil
}
