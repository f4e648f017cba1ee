package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers are
// expected to branch with errors.Is rather than on error text.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when creating a user whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
