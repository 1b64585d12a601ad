package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyCandidates = errors.New("no candidates remain")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrNotFound        = errors.New("not found")
)
