package booking

import (
	"errors"
	"fmt"
)

// ServiceError is a typed error carrying a stable code for the HTTP layer.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
)

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == CodeValidation
}

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == CodeNotFound
}
