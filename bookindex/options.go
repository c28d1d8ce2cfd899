package bookindex

import "github.com/0xRadioAc7iv/go-bookindex/internal"

type Option func(*internal.Config)

func WithDataPath(path string) Option {
	return func(c *internal.Config) {
		c.DataPath = path
	}
}

func WithIndexPath(path string) Option {
	return func(c *internal.Config) {
		c.IndexPath = path
	}
}
