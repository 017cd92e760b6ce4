package member

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

const (
	memberNotFound      = "MEMBER_NOT_FOUND"       // errInfo
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS"  // errInfo
	memberInvalidDate   = "MEMBER_INVALID_DATE"    // errInfo
)

var (
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrInvalidDate         = sharedError.NewDomainError(memberInvalidDate)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Member not found.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "A member with this student number already exists.",
	})

	sharedError.RegisterDomainErrorResponse(memberInvalidDate, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "Dates must be formatted as YYYY-MM-DD.",
	})
}
