package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/0xRadioAc7iv/go-bookindex/core"
)

const (
	BuildFlag = "--build"
	DataFlag  = "--data"
	IndexFlag = "--index"
)

// Usage errors. Their text is printed as is.
var (
	ErrMissingBookID    = errors.New("book id as argument is required!")
	ErrTooManyArguments = errors.New("too many arguments! needs only one")
	ErrMissingFlagValue = errors.New("flag needs a value")
)

// Inputs is what the command line asked for.
type Inputs struct {
	Build     bool
	BookID    string
	DataPath  string
	IndexPath string
}

// HandleCLIInputs parses the arguments that follow the program name.
//
// "--build" may appear anywhere and wins over any book id. "--data" and
// "--index" override the file paths, either as "--data=path" or
// "--data path". Every other argument is a positional book id candidate.
func HandleCLIInputs(args []string) (*Inputs, error) {
	inputs := &Inputs{
		DataPath:  core.DefaultDataFileName,
		IndexPath: core.DefaultIndexFileName,
	}

	var ids []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == BuildFlag {
			inputs.Build = true
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if name != DataFlag && name != IndexFlag {
			ids = append(ids, arg)
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: %s", ErrMissingFlagValue, name)
			}
			i++
			value = args[i]
		}
		if value == "" || isFlag(value) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFlagValue, name)
		}

		if name == DataFlag {
			inputs.DataPath = value
		} else {
			inputs.IndexPath = value
		}
	}

	if inputs.Build {
		return inputs, nil
	}

	if len(ids) == 0 {
		return nil, ErrMissingBookID
	}
	if len(ids) > 1 {
		return nil, ErrTooManyArguments
	}

	inputs.BookID = ids[0]

	return inputs, nil
}

func isFlag(arg string) bool {
	name, _, _ := strings.Cut(arg, "=")
	return name == BuildFlag || name == DataFlag || name == IndexFlag
}

// IsUsageError reports whether err came from HandleCLIInputs.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingBookID) ||
		errors.Is(err, ErrTooManyArguments) ||
		errors.Is(err, ErrMissingFlagValue)
}

// SplitStringIntoCommandAndArguments splits a shell line into a command and
// its single optional argument. Quoting follows sh rules, so ids that
// contain spaces can be passed as "some id" or 'some id'.
func SplitStringIntoCommandAndArguments(line string) (cmd, arg string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", err
	}

	switch len(words) {
	case 0:
		return "", "", errors.New("empty command")
	case 1:
		return strings.ToLower(words[0]), "", nil
	case 2:
		return strings.ToLower(words[0]), words[1], nil
	default:
		return "", "", ErrTooManyArguments
	}
}
