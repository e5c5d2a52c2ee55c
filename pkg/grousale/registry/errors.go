package registry

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("group not found")
	ErrExpired     = errors.New("group expired")
	ErrAlreadyFull = errors.New("group is already full")
	ErrNotFull     = errors.New("group is not full")
)

// Validation messages surfaced to callers verbatim
const (
	MsgMissingFields   = "Missing required fields"
	MsgInvalidNumbers  = "Invalid numeric values"
	MsgInvalidValues   = "Invalid field values"
	MsgGroupIDRequired = "Group ID is required"
	MsgUserIDRequired  = "User ID is required"
	MsgInvalidBody     = "Invalid request body"
)

// ValidationError describes malformed or out-of-range input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
