package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch apperror.GetCode(err) {
	case apperror.CodeNotFound:
		NotFound(w, err.Error())
	case apperror.CodeEmptyResult:
		EmptyResult(w, err.Error())
	case apperror.CodeValidation:
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			slog.Error("request failed", "error", err)
			InternalServerError(w, appErr.Message)
			return
		}
		slog.Error("unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
