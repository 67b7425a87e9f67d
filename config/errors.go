package config

import "errors"

// ErrNilProvider is returned by Resolve when a nil provider was registered.
var ErrNilProvider = errors.New("provider must not be nil")

// ValidationError wraps the diagnostic returned when the merged configuration
// does not satisfy the schema or the result's own Validate method.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "failed to parse config: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
