package commands

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidCommand = errors.New("invalid command")
	ErrStoreNil       = errors.New("storer is nil")
	ErrPresenterNil   = errors.New("presenter is nil")
	ErrListNil        = errors.New("task list is nil")
)

// ValidationError carries a message meant for the user. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
