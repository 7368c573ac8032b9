package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses by their kind.
func HandleError(w http.ResponseWriter, err error) {
	// Field level validation keeps its details
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch kind := apperror.KindOf(err); kind {
	case apperror.KindNotFound:
		NotFound(w, err.Error())
	case apperror.KindInsufficientBalance:
		Error(w, http.StatusUnprocessableEntity, string(kind), err.Error())
	case apperror.KindInvalidTransition:
		Error(w, http.StatusConflict, string(kind), err.Error())
	case apperror.KindConflict:
		Conflict(w, err.Error())
	case apperror.KindValidation:
		Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err, "kind", kind)
		InternalServerError(w, "An unexpected error occurred")
	}
}
