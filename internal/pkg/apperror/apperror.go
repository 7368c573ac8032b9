package apperror

import (
	"errors"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
)

// Kind classifies a failure so callers can react without matching messages.
type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindInsufficientBalance Kind = "INSUFFICIENT_BALANCE"
	KindInvalidTransition   Kind = "INVALID_TRANSITION"
	KindConflict            Kind = "CONFLICT"
	KindValidation          Kind = "VALIDATION"
	KindInternal            Kind = "INTERNAL"
)

// Error is a domain failure carrying a Kind. Domain packages declare their
// sentinels with New and compare them with errors.Is.
type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the Kind of the first *Error in err's chain.
// Validation errors report KindValidation, anything else KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return KindValidation
	}

	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
