package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound         = errors.New("team not found")
	ErrCapacityExceeded = errors.New("registry capacity exceeded")
)
