package internal

import "github.com/0xRadioAc7iv/go-bookindex/core"

type Config struct {
	DataPath  string
	IndexPath string
}

func DefaultConfig() *Config {
	return &Config{
		DataPath:  core.DefaultDataFileName,
		IndexPath: core.DefaultIndexFileName,
	}
}
