package core_test

import (
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-bookindex/core"
	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

func TestBuildIndex(t *testing.T) {
	dataPath, offsets := writeDataset(t, book("B001"), book("B002"), book("B003"))

	index, err := core.BuildIndex(dataPath)
	require.NoError(t, err)

	want := core.Index{
		{BookID: "B001", Offset: offsets[0]},
		{BookID: "B002", Offset: offsets[1]},
		{BookID: "B003", Offset: offsets[2]},
	}
	assert.Equal(t, want, index)
}

func TestBuildIndexFirstOffsetFollowsHeader(t *testing.T) {
	dataPath, _ := writeDataset(t, book("B001"))

	index, err := core.BuildIndex(dataPath)
	require.NoError(t, err)
	require.Len(t, index, 1)

	headerLen := uint64(len(csvLine(t, record.BookFields)))
	assert.Equal(t, headerLen, index[0].Offset)
}

func TestBuildIndexQuotedFields(t *testing.T) {
	first := book("B001")
	first[5] = "A description, with commas,\n\"quotes\" and\r\nnewlines"
	second := book("B002")
	second[1] = "Title, Part \"Two\""

	dataPath, offsets := writeDataset(t, first, second, book("B003"))

	index, err := core.BuildIndex(dataPath)
	require.NoError(t, err)
	require.Len(t, index, 3)

	for i, entry := range index {
		assert.Equal(t, offsets[i], entry.Offset, "entry %d", i)
	}
}

func TestBuildIndexBlankTrailingColumns(t *testing.T) {
	header := strings.Join(record.BookFields, ",") + ",,\n"
	row := strings.Join(book("B001"), ",") + ",,\n"
	dataPath := writeFile(t, "books.csv", header+row)

	index, err := core.BuildIndex(dataPath)
	require.NoError(t, err)
	assert.Equal(t, core.Index{{BookID: "B001", Offset: uint64(len(header))}}, index)

	got, err := core.FindUsingIndex(dataPath, writeFile(t, "index.csv", "bookId,offset\n"), "B001")
	require.NoError(t, err)
	assert.Equal(t, "title of B001", got.Title)
}

func TestSaveIndexWritesFile(t *testing.T) {
	dataPath, offsets := writeDataset(t, book("B001"), book("B002"))
	idxPath := indexPath(t)

	index, err := core.SaveIndex(dataPath, idxPath)
	require.NoError(t, err)
	require.Len(t, index, 2)

	content, err := os.ReadFile(idxPath)
	require.NoError(t, err)

	want := "bookId,offset\n" +
		"B001," + itoa(offsets[0]) + "\n" +
		"B002," + itoa(offsets[1]) + "\n"
	assert.Equal(t, want, string(content))
}

func TestSaveIndexHeaderOnlyDataset(t *testing.T) {
	dataPath, _ := writeDataset(t)
	idxPath := indexPath(t)

	index, err := core.SaveIndex(dataPath, idxPath)
	require.NoError(t, err)
	assert.Empty(t, index)

	content, err := os.ReadFile(idxPath)
	require.NoError(t, err)
	assert.Equal(t, "bookId,offset\n", string(content))

	loaded, err := core.LoadIndex(idxPath)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveIndexIsIdempotent(t *testing.T) {
	dataPath, _ := writeDataset(t, book("B001"), book("B002"), book("B003"))
	idxPath := indexPath(t)

	_, err := core.SaveIndex(dataPath, idxPath)
	require.NoError(t, err)
	first, err := os.ReadFile(idxPath)
	require.NoError(t, err)

	_, err = core.SaveIndex(dataPath, idxPath)
	require.NoError(t, err)
	second, err := os.ReadFile(idxPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSaveIndexOverwritesExistingFile(t *testing.T) {
	dataPath, _ := writeDataset(t, book("B001"))
	idxPath := indexPath(t)
	require.NoError(t, os.WriteFile(idxPath, []byte("bookId,offset\nstale,1\nstale,2\nstale,3\n"), 0644))

	_, err := core.SaveIndex(dataPath, idxPath)
	require.NoError(t, err)

	index, err := core.LoadIndex(idxPath)
	require.NoError(t, err)
	require.Len(t, index, 1)
	assert.Equal(t, "B001", index[0].BookID)
}

func TestBuildIndexErrors(t *testing.T) {
	t.Run("missing dataset", func(t *testing.T) {
		_, err := core.BuildIndex(indexPath(t))

		var ioErr *core.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := core.BuildIndex(writeFile(t, "books.csv", ""))

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.ErrorIs(t, err, core.ErrMissingHeader)
	})

	t.Run("header missing a column", func(t *testing.T) {
		_, err := core.BuildIndex(writeFile(t, "books.csv", "bookId,title\nB001,Dune\n"))

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.ErrorIs(t, err, record.ErrMissingColumn)
	})

	t.Run("row with too few fields", func(t *testing.T) {
		dataPath, offsets := writeDataset(t, book("B001"), []string{"B002", "short"}, book("B003"))

		_, err := core.BuildIndex(dataPath)

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.ErrorIs(t, err, record.ErrFieldCount)
		assert.Equal(t, int64(offsets[1]), formatErr.Offset)
	})

	t.Run("failed build keeps the previous index", func(t *testing.T) {
		idxPath := indexPath(t)
		previous := []byte("bookId,offset\nB001,250\n")
		require.NoError(t, os.WriteFile(idxPath, previous, 0644))

		dataPath, _ := writeDataset(t, book("B001"), []string{"B002", "short"})

		_, err := core.SaveIndex(dataPath, idxPath)
		assert.ErrorIs(t, err, record.ErrFieldCount)

		content, err := os.ReadFile(idxPath)
		require.NoError(t, err)
		assert.Equal(t, previous, content)
	})

	t.Run("broken quoting", func(t *testing.T) {
		dataPath, _ := writeDataset(t, book("B001"))
		f, err := os.OpenFile(dataPath, os.O_APPEND|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.WriteString("B002,\"unterminated\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = core.BuildIndex(dataPath)

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
	})
}

func TestLoadIndexErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := core.LoadIndex(indexPath(t))

		var ioErr *core.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("no header", func(t *testing.T) {
		_, err := core.LoadIndex(writeFile(t, "index.csv", "B001,10\n"))
		assert.ErrorIs(t, err, core.ErrMissingHeader)
	})

	t.Run("bad offset", func(t *testing.T) {
		_, err := core.LoadIndex(writeFile(t, "index.csv", "bookId,offset\nB001,ten\n"))

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.ErrorIs(t, err, record.ErrInvalidOffset)
		assert.Equal(t, int64(len("bookId,offset\n")), formatErr.Offset)
	})

	t.Run("offset beyond any file position", func(t *testing.T) {
		_, err := core.LoadIndex(writeFile(t, "index.csv", "bookId,offset\nB001,9223372036854775813\n"))

		var formatErr *core.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.ErrorIs(t, err, record.ErrInvalidOffset)
	})

	t.Run("wrong width", func(t *testing.T) {
		_, err := core.LoadIndex(writeFile(t, "index.csv", "bookId,offset\nB001,10,extra\n"))
		assert.ErrorIs(t, err, record.ErrFieldCount)
	})
}

func TestIndexLookup(t *testing.T) {
	index := core.Index{
		{BookID: "B001", Offset: 100},
		{BookID: "DUP", Offset: 200},
		{BookID: "B002", Offset: 300},
		{BookID: "DUP", Offset: 400},
	}

	tests := []struct {
		name      string
		id        string
		wantOff   uint64
		wantFound bool
	}{
		{"unique id", "B002", 300, true},
		{"duplicate id resolves to last entry", "DUP", 400, true},
		{"missing id falls back to zero", "nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, found := index.Lookup(tt.id)
			assert.Equal(t, tt.wantOff, offset)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantOff, index.Offset(tt.id))
		})
	}
}
