package user

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

const (
	userNotFound  = "USER_NOT_FOUND"  // errInfo
	userForbidden = "USER_FORBIDDEN"  // errInfo
)

var (
	ErrUserNotFound  = sharedError.NewDomainError(userNotFound)
	ErrUserForbidden = sharedError.NewDomainError(userForbidden)
)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "USER-001",
		Message: "User not found.",
	})

	sharedError.RegisterDomainErrorResponse(userForbidden, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "USER-002",
		Message: "You may only view your own records.",
	})
}
