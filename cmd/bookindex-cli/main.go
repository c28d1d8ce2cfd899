package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/0xRadioAc7iv/go-bookindex/bookindex"
	"github.com/0xRadioAc7iv/go-bookindex/core"
	"github.com/0xRadioAc7iv/go-bookindex/internal/utils"
)

const helpString = `
Available Commands:

GET <id>
  Find a book by seeking to its offset in the loaded index.

SCAN <id>
  Find a book by scanning the dataset from the start.

OFFSET <id>
  Show the offset recorded for the id.

COUNT
  Number of entries in the loaded index.

BUILD
  Rebuild the index file from the dataset and reload it.

HELP
  Show this help message.

EXIT
  Quit.
`

type shell struct {
	finder *bookindex.Finder
	index  bookindex.Index
	out    io.Writer
}

func main() {
	dataPath := flag.String("data", core.DefaultDataFileName, "Books dataset (CSV)")
	indexPath := flag.String("index", core.DefaultIndexFileName, "Index file")
	flag.Parse()

	sh := &shell{
		finder: bookindex.New(bookindex.WithDataPath(*dataPath), bookindex.WithIndexPath(*indexPath)),
		out:    os.Stdout,
	}

	if err := sh.load(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Loaded %s entries from %s\n", humanize.Comma(int64(len(sh.index))), *indexPath)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	sh.loop(os.Stdin)
}

// load reads the index file, building it first when it does not exist yet.
func (sh *shell) load() error {
	if !utils.PathExists(sh.finder.IndexPath()) {
		fmt.Fprintf(sh.out, "%s not found. Building it from %s...\n", sh.finder.IndexPath(), sh.finder.DataPath())
		if _, err := sh.finder.Build(); err != nil {
			return err
		}
	}

	index, err := sh.finder.LoadIndex()
	if err != nil {
		return err
	}

	sh.index = index
	return nil
}

func (sh *shell) loop(in io.Reader) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(sh.out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(sh.out, "input error:", err)
			}
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		cmd, arg, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			fmt.Fprintln(sh.out, "parse error:", err)
			continue
		}

		reply, quit := sh.execute(cmd, arg)
		if quit {
			return
		}

		fmt.Fprintln(sh.out, reply)
	}
}

// execute runs one command and returns its reply. quit is true when the
// shell should stop reading input.
func (sh *shell) execute(cmd, arg string) (reply string, quit bool) {
	switch cmd {
	case "get":
		if arg == "" {
			return utils.ErrMissingBookID.Error(), false
		}
		res, err := sh.finder.FindInIndex(sh.index, arg)
		if err != nil {
			return err.Error(), false
		}
		if !res.Indexed {
			return fmt.Sprintf("%v\n(not in index, scanned from the start in %v)", res.Book, res.Elapsed), false
		}
		return fmt.Sprintf("%v\n(offset %d, %v)", res.Book, res.Offset, res.Elapsed), false

	case "scan":
		if arg == "" {
			return utils.ErrMissingBookID.Error(), false
		}
		res, err := sh.finder.FindWithoutIndex(arg)
		if err != nil {
			return err.Error(), false
		}
		return fmt.Sprintf("%v\n(%v)", res.Book, res.Elapsed), false

	case "offset":
		if arg == "" {
			return utils.ErrMissingBookID.Error(), false
		}
		offset, ok := sh.index.Lookup(arg)
		if !ok {
			return "nil", false
		}
		return fmt.Sprintf("%d", offset), false

	case "count":
		return humanize.Comma(int64(len(sh.index))), false

	case "build":
		index, err := sh.finder.Build()
		if err != nil {
			return err.Error(), false
		}
		sh.index = index
		return "ok", false

	case "help":
		return strings.TrimSpace(helpString), false

	case "exit":
		return "", true

	default:
		return "Invalid Command", false
	}
}
