/*
	Basic Script that generates a synthetic books dataset, big enough to make
	the difference between a full scan and an indexed lookup visible.
*/

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/0xRadioAc7iv/go-bookindex/internal/record"
)

const (
	defaultBooks  = 200000
	progressEvery = 50000
)

var (
	words     = strings.Fields("the of and a night river house war last secret garden king star city shadow light girl time")
	genres    = []string{"Fiction", "Fantasy", "Romance", "Classics", "Mystery", "Science Fiction", "History"}
	languages = []string{"English", "French", "German", "Spanish"}
)

func main() {
	out := flag.String("out", "books.csv", "Output dataset path")
	n := flag.Int("n", defaultBooks, "Number of books to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	start := time.Now()
	fmt.Printf("Generating %s books into %s\n", humanize.Comma(int64(*n)), *out)

	if err := generate(*out, *n, rand.New(rand.NewSource(*seed))); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %v\n", time.Since(start))
}

func generate(path string, n int, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record.BookFields); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		book := makeBook(i, rng)
		if err := w.Write(book.Values()); err != nil {
			return err
		}

		if (i+1)%progressEvery == 0 {
			fmt.Printf("%s books written\n", humanize.Comma(int64(i+1)))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}

func makeBook(i int, rng *rand.Rand) record.Book {
	title := phrase(rng, 2+rng.Intn(4))

	return record.Book{
		BookID:           fmt.Sprintf("%d.%s", i+1, strings.ReplaceAll(title, " ", "_")),
		Title:            strings.ToUpper(title[:1]) + title[1:],
		Series:           "",
		Author:           fmt.Sprintf("Author %03d", rng.Intn(1000)),
		Rating:           fmt.Sprintf("%.2f", 1+4*rng.Float64()),
		Description:      fmt.Sprintf("%s, %s.\n\"%s\"", phrase(rng, 12), phrase(rng, 8), phrase(rng, 4)),
		Language:         languages[rng.Intn(len(languages))],
		ISBN:             fmt.Sprintf("978%010d", rng.Int63n(1e10)),
		Genres:           fmt.Sprintf("['%s', '%s']", genres[rng.Intn(len(genres))], genres[rng.Intn(len(genres))]),
		Characters:       "[]",
		BookFormat:       "Paperback",
		Edition:          "",
		Pages:            fmt.Sprintf("%d", 80+rng.Intn(900)),
		Publisher:        fmt.Sprintf("Publisher %02d", rng.Intn(50)),
		PublishDate:      fmt.Sprintf("%02d/%02d/%d", 1+rng.Intn(12), 1+rng.Intn(28), 1950+rng.Intn(70)),
		FirstPublishDate: "",
		Awards:           "[]",
		NumRatings:       fmt.Sprintf("%d", rng.Intn(5000000)),
		RatingsByStars:   "[]",
		LikedPercent:     fmt.Sprintf("%d", 50+rng.Intn(50)),
		Setting:          "[]",
		CoverImg:         fmt.Sprintf("https://images.example.com/%d.jpg", i+1),
		BBEScore:         fmt.Sprintf("%d", rng.Intn(3000000)),
		BBEVotes:         fmt.Sprintf("%d", rng.Intn(30000)),
		Price:            fmt.Sprintf("%.2f", 1+30*rng.Float64()),
	}
}

func phrase(rng *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(parts, " ")
}
