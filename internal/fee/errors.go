package fee

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

const (
	feeNotFound         = "FEE_NOT_FOUND"          // errInfo
	feeAlreadyExists    = "FEE_ALREADY_EXISTS"     // errInfo
	feeInvalidReference = "FEE_INVALID_REFERENCE"  // errInfo
	feeInvalidPayment   = "FEE_INVALID_PAYMENT"    // errInfo
	feeNegativeAmount   = "FEE_NEGATIVE_AMOUNT"    // errInfo
)

var (
	ErrFeeNotFound      = sharedError.NewDomainError(feeNotFound)
	ErrFeeAlreadyExists = sharedError.NewDomainError(feeAlreadyExists)
	ErrInvalidReference = sharedError.NewDomainError(feeInvalidReference)
	ErrInvalidPayment   = sharedError.NewDomainError(feeInvalidPayment)
	ErrNegativeAmount   = sharedError.NewDomainError(feeNegativeAmount)
)

func init() {
	sharedError.RegisterDomainErrorResponse(feeNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "FEE-001",
		Message: "Fee not found.",
	})

	sharedError.RegisterDomainErrorResponse(feeAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "FEE-002",
		Message: "A fee with this transaction ID already exists.",
	})

	sharedError.RegisterDomainErrorResponse(feeInvalidReference, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "FEE-003",
		Message: "The referenced member or organization does not exist.",
	})

	sharedError.RegisterDomainErrorResponse(feeInvalidPayment, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "FEE-004",
		Message: "Payment date is required for paid fees.",
	})

	sharedError.RegisterDomainErrorResponse(feeNegativeAmount, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "FEE-005",
		Message: "Amount must not be negative.",
	})
}
