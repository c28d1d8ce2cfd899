package record

import (
	"errors"
	"fmt"
)

// Book is a single row of the books dataset.
//
// Every column is kept as raw text, including the ones that look numeric
// (rating, pages, numRatings, price...). Nothing is parsed or validated
// beyond the row shape.
type Book struct {
	BookID           string
	Title            string
	Series           string
	Author           string
	Rating           string
	Description      string
	Language         string
	ISBN             string
	Genres           string
	Characters       string
	BookFormat       string
	Edition          string
	Pages            string
	Publisher        string
	PublishDate      string
	FirstPublishDate string
	Awards           string
	NumRatings       string
	RatingsByStars   string
	LikedPercent     string
	Setting          string
	CoverImg         string
	BBEScore         string
	BBEVotes         string
	Price            string
}

// BookFields is the column order of the books dataset header.
var BookFields = []string{
	"bookId",
	"title",
	"series",
	"author",
	"rating",
	"description",
	"language",
	"isbn",
	"genres",
	"characters",
	"bookFormat",
	"edition",
	"pages",
	"publisher",
	"publishDate",
	"firstPublishDate",
	"awards",
	"numRatings",
	"ratingsByStars",
	"likedPercent",
	"setting",
	"coverImg",
	"bbeScore",
	"bbeVotes",
	"price",
}

var (
	ErrFieldCount    = errors.New("wrong number of fields")
	ErrMissingColumn = errors.New("missing column in header")
	ErrDuplicate     = errors.New("duplicate column in header")
)

// fields returns pointers to the Book's fields in BookFields order.
func (b *Book) fields() []*string {
	return []*string{
		&b.BookID, &b.Title, &b.Series, &b.Author, &b.Rating,
		&b.Description, &b.Language, &b.ISBN, &b.Genres, &b.Characters,
		&b.BookFormat, &b.Edition, &b.Pages, &b.Publisher, &b.PublishDate,
		&b.FirstPublishDate, &b.Awards, &b.NumRatings, &b.RatingsByStars, &b.LikedPercent,
		&b.Setting, &b.CoverImg, &b.BBEScore, &b.BBEVotes, &b.Price,
	}
}

// Values returns the Book's fields in BookFields order, ready to be written
// as a dataset row.
func (b *Book) Values() []string {
	ptrs := b.fields()
	values := make([]string, len(ptrs))
	for i, p := range ptrs {
		values[i] = *p
	}
	return values
}

func (b Book) String() string {
	return fmt.Sprintf("Book { bookId: %q, title: %q, author: %q, rating: %q, pages: %q, publisher: %q, price: %q }",
		b.BookID, b.Title, b.Author, b.Rating, b.Pages, b.Publisher, b.Price)
}

// Schema maps the dataset's header row to Book fields.
//
// It is built once from the header at the start of the file and reused for
// every row afterwards, including rows read after seeking into the middle of
// the file where no header is available.
type Schema struct {
	width     int
	positions []int // column position of each BookFields entry
}

// NewSchema builds a Schema from a header row. Columns are matched by name,
// so the header may order them freely and carry extra columns. Extra columns
// are never read and may repeat (blank trailing columns are common).
func NewSchema(header []string) (*Schema, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := columns[name]; ok {
			if isBookField(name) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicate, name)
			}
			continue
		}
		columns[name] = i
	}

	positions := make([]int, len(BookFields))
	for i, name := range BookFields {
		pos, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		positions[i] = pos
	}

	return &Schema{width: len(header), positions: positions}, nil
}

func isBookField(name string) bool {
	for _, field := range BookFields {
		if field == name {
			return true
		}
	}
	return false
}

// Width is the number of columns in the header.
func (s *Schema) Width() int {
	return s.width
}

// Decode maps one dataset row onto a Book.
func (s *Schema) Decode(row []string) (*Book, error) {
	if len(row) != s.width {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(row), s.width)
	}

	book := &Book{}
	for i, p := range book.fields() {
		*p = row[s.positions[i]]
	}

	return book, nil
}
