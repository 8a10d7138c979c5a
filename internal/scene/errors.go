package scene

import (
	"errors"
	"fmt"
)

// Common load failures.
var (
	ErrMalformed    = errors.New("malformed scene JSON")
	ErrUnknownShape = errors.New("unknown shape type")
	ErrBadGeometry  = errors.New("invalid shape geometry")
)

// LoadError reports why a snapshot could not be applied.
// The document is unchanged when a LoadError is returned.
type LoadError struct {
	// Path is the gjson path of the offending value, if any.
	Path string
	// Message describes the failure.
	Message string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load scene: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("load scene: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
