package store

import "errors"

var (
	// ErrNotFound signals a lookup miss. Callers treat it as an
	// expected condition, not a store fault.
	ErrNotFound = errors.New("store: document not found")

	// ErrDuplicateKey signals a unique-index violation, e.g. two
	// concurrent first logins racing to create the same user.
	ErrDuplicateKey = errors.New("store: duplicate key")
)
