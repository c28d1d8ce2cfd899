package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/0xRadioAc7iv/go-bookindex/bookindex"
	"github.com/0xRadioAc7iv/go-bookindex/core"
	"github.com/0xRadioAc7iv/go-bookindex/internal/utils"
)

const separator = "==================================================="

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	inputs, err := utils.HandleCLIInputs(args)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return utils.ExitCode(err)
	}

	finder := bookindex.New(
		bookindex.WithDataPath(inputs.DataPath),
		bookindex.WithIndexPath(inputs.IndexPath),
	)

	if inputs.Build {
		err = build(finder, stdout)
	} else {
		err = compare(finder, inputs.BookID, stdout)
	}

	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}

	return utils.ExitCode(err)
}

func build(finder *bookindex.Finder, w io.Writer) error {
	fmt.Fprintf(w, "Building index of %s to %s\n", finder.DataPath(), finder.IndexPath())

	index, err := finder.Build()
	if err != nil {
		return err
	}

	size, err := indexSize(finder.IndexPath())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Done! Indexed %s books (%s)\n", humanize.Comma(int64(len(index))), humanize.Bytes(size))
	return nil
}

func indexSize(path string) (uint64, error) {
	size, err := utils.FileSize(path)
	if err != nil {
		return 0, core.NewIOError("stat", path, err)
	}
	return size, nil
}

func compare(finder *bookindex.Finder, bookID string, w io.Writer) error {
	fmt.Fprintf(w, "Finding %s...\n\n", bookID)

	res, err := finder.FindWithoutIndex(bookID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "WITHOUT INDEX RESULTS: took %v\n", res.Elapsed)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%v\n\n", res.Book)

	res, err = finder.FindUsingIndex(bookID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "WITH INDEX RESULTS: took %v (offset %d)\n", res.Elapsed, res.Offset)
	if !res.Indexed {
		fmt.Fprintf(w, "warning: %s is not in %s, scanned %s from the start\n", bookID, finder.IndexPath(), finder.DataPath())
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%v\n\n", res.Book)

	return nil
}
