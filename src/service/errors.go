package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a record that does not exist and a record owned
// by a different user. The two cases must stay indistinguishable to callers.
var ErrNotFound = errors.New("record not found")

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
