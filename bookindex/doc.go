// Package bookindex looks up books in a CSV dataset either by scanning it
// from the start or by seeking to an offset recorded in an index file.
//
// Example:
//
//	finder := bookindex.New(
//	    bookindex.WithDataPath("books.csv"),
//	    bookindex.WithIndexPath("index.csv"),
//	)
//
//	if _, err := finder.Build(); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := finder.FindUsingIndex("2767052-the-hunger-games")
//	fmt.Println(res.Elapsed, res.Book)
package bookindex
