package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperror.New(apperror.KindNotFound, "claim not found"), http.StatusNotFound, "NOT_FOUND"},
		{"insufficient balance", apperror.New(apperror.KindInsufficientBalance, "insufficient leave balance"), http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE"},
		{"invalid transition wrapped", fmt.Errorf("%w: paid to approved", apperror.New(apperror.KindInvalidTransition, "invalid claim status transition")), http.StatusConflict, "INVALID_TRANSITION"},
		{"conflict", apperror.New(apperror.KindConflict, "employee code already exists"), http.StatusConflict, "CONFLICT"},
		{"validation kind", apperror.New(apperror.KindValidation, "number of days must be positive"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"validation errors", validator.ValidationErrors{{Field: "title", Message: "is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.New("pq: password authentication failed"))

	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandleError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, fmt.Errorf("wrap: %w", validator.ValidationErrors{{Field: "lines", Message: "must contain at least one line"}}))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "must contain at least one line", body.Error.Details["lines"])
}
