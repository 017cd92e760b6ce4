package auth

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

const (
	incorrectCredentials = "INCORRECT_CREDENTIALS"   // errInfo
	accountAlreadyExists = "ACCOUNT_ALREADY_EXISTS"  // errInfo
	unknownStudentNumber = "UNKNOWN_STUDENT_NUMBER"  // errInfo
)

var (
	ErrIncorrectCredentials = sharedError.NewDomainError(incorrectCredentials)
	ErrAccountAlreadyExists = sharedError.NewDomainError(accountAlreadyExists)
	ErrUnknownStudentNumber = sharedError.NewDomainError(unknownStudentNumber)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectCredentials, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-001",
		Message: "Username or password is incorrect.",
	})

	sharedError.RegisterDomainErrorResponse(accountAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "AUTH-002",
		Message: "An account with this username already exists.",
	})

	sharedError.RegisterDomainErrorResponse(unknownStudentNumber, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "No member exists with this student number.",
	})
}
