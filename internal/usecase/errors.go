package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// FieldError is an ErrInvalidInput naming the request field at fault. Cause,
// when set, stays reachable through errors.Is.
type FieldError struct {
	Field   string
	Message string
	Cause   error
}

func (e *FieldError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Cause}
}

func invalidField(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
