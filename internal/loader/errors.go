package loader

import "errors"

// Sentinel kinds for load failures.
var (
	ErrEmptySource = errors.New("source file empty or missing")
)
