package service

import "errors"

var (
	// ErrPartialFailure wraps a run in which at least one per-secret
	// operation failed while the rest were still attempted.
	ErrPartialFailure = errors.New("some operations failed")
)
