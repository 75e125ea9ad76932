package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that finds no record.
	ErrNotFound = errors.New("not found")
	// ErrFNSKUInUse is returned when a code is already attached to another product.
	ErrFNSKUInUse = errors.New("fnsku in use")
)
