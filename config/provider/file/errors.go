package file

import (
	"errors"
	"fmt"
)

var (
	// ErrNotObject is reported when a file's top-level value is not an object.
	ErrNotObject = errors.New("parser did not return an object")
	// ErrParserUnavailable is reported when an extension has no parser.
	ErrParserUnavailable = errors.New("parser unavailable")
)

// FormatError describes a configuration file that cannot be used.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("file %q: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
