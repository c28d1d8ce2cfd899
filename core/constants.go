package core

const (
	DefaultDataFileName  = "books.csv"
	DefaultIndexFileName = "index.csv"

	// 0 (special bit - ignored), 6 (rw- owner), 4 (r-- group), 4 (r-- others)
	IndexFileMode = 0644
)
