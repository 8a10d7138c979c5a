package gallery

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrEmptyName is returned for a blank canvas name.
	ErrEmptyName = errors.New("name is empty")

	// ErrNameTooLong is returned for names over MaxNameLength graphemes.
	ErrNameTooLong = errors.New("name is too long")

	// ErrDuplicateName is returned when the name is already saved.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotFound is returned when no entry has the given id.
	ErrNotFound = errors.New("canvas not found")

	// ErrEmptySnapshot is returned when saving a zero snapshot.
	ErrEmptySnapshot = errors.New("snapshot is empty")
)

// NameError reports a rejected canvas name. The caller should ask for a
// different name.
type NameError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *NameError) Error() string {
	return fmt.Sprintf("invalid canvas name %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *NameError) Unwrap() error {
	return e.Err
}
