package repositories

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates an admin with that email already exists
	ErrDuplicateEmail = errors.New("duplicate email")
)
