// Package sentinel holds the store-level errors that services translate into
// domain errors at their boundary.
package sentinel

import "errors"

var (
	// ErrNotFound is returned by stores when no row or entry matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed is returned when a one-shot write (an alert dismissal, an
	// upload registration) has already happened for the same key.
	ErrAlreadyUsed = errors.New("already used")
)
