package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that a requested change collides with stored state,
// e.g. a proposed stay overlapping an existing one on the same room.
var ErrConflict = errors.New("booking conflict")
