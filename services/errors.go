package services

import (
	"errors"
)

// Structured error kinds surfaced to the API layer. NotFound covers both
// missing entities and entities owned by someone else, so existence is never
// leaked across users. Anything not wrapping one of these is reported to the
// caller as a generic internal failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
)
