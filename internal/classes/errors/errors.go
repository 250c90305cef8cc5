package errors

import "errors"

var (
	ErrNotFound = errors.New("class not found")

	// ErrNoSlots is returned by the atomic decrement when no slot remains.
	ErrNoSlots = errors.New("no available slots")
)
