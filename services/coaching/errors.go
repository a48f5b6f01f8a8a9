package coaching

import "errors"

var (
	// ErrNotAllowed is returned for mutations the viewer may not perform.
	ErrNotAllowed = errors.New("viewer is not allowed to perform this action")
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
)
