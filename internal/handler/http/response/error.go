package response

import (
	"errors"
	"net/http"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, record.ErrActorRequired):
		BadRequest(w, "Actor is required", nil)
	case errors.Is(err, record.ErrReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, record.ErrAlreadyTerminal):
		Conflict(w, "Record already approved or rejected")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
