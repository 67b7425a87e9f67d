package paths

import (
	"errors"
	"fmt"
)

var (
	// ErrCollision is reported when one path receives two different type hints.
	ErrCollision = errors.New("collision detected")
	// ErrMixedUnion is reported when a union mixes objects and primitives.
	ErrMixedUnion = errors.New("union mixes objects and primitives")
	// ErrMixedPrimitives is reported when a union's primitive branches disagree.
	ErrMixedPrimitives = errors.New("union mixes primitives of different types")
	// ErrMixedLiterals is reported when literal values have different kinds.
	ErrMixedLiterals = errors.New("literal mixes values of different types")
	// ErrUnsupportedLiteral is reported for literal values that are not
	// strings, numbers, booleans, big integers or nil.
	ErrUnsupportedLiteral = errors.New("unsupported literal value")
)

// SchemaError describes a schema that cannot be flattened unambiguously.
type SchemaError struct {
	Path string
	Err  error
	msg  string
}

func (e *SchemaError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("%s at path '%s'", e.Err, e.Path)
	}

	return fmt.Sprintf("%s at path '%s': %s", e.Err, e.Path, e.msg)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
