package report

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

// missingFiltersResponse is returned when a report request is rejected
// before any query ran.
var missingFiltersResponse = sharedError.ErrorResponse{
	Status:  http.StatusBadRequest,
	Code:    "REPORT-001",
	Message: "Required filters are missing.",
}

// ValidationError marks a report request rejected before any query ran,
// typically for missing required filters. Its message names the offending
// fields and is safe to surface to the client.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(err error) *ValidationError {
	return &ValidationError{msg: err.Error()}
}
