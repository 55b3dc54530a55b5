package errors

import "errors"

// Shared application errors. Services wrap these with context; handlers
// map them to HTTP status codes.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for authentication failures (bad or missing token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the rights for an action.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for invalid input data.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned for state conflicts (duplicate team name,
	// double score submission, approving a non-pending score).
	ErrConflict = errors.New("resource state conflict")
)
