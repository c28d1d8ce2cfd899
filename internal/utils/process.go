package utils

import (
	"errors"

	"github.com/0xRadioAc7iv/go-bookindex/core"
)

// Process exit statuses, one per error kind.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitIOError  = 3
	ExitFormat   = 4
	ExitNotFound = 5
)

// ExitCode maps an error returned by the lookup or build path to the
// status the process should exit with.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var formatErr *core.FormatError
	var ioErr *core.IOError

	switch {
	case IsUsageError(err):
		return ExitUsage
	case errors.Is(err, core.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &formatErr):
		return ExitFormat
	case errors.As(err, &ioErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}
