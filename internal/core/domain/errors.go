package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSources indicates a load completed with zero usable sources.
	// This is a data-absence condition, not a failure of the load itself.
	ErrNoSources = errors.New("no sources loaded")

	// ErrLoadInProgress indicates a library load is already running.
	ErrLoadInProgress = errors.New("load in progress")
)
