package organization

import (
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
)

const (
	organizationNotFound      = "ORGANIZATION_NOT_FOUND"      // errInfo
	organizationAlreadyExists = "ORGANIZATION_ALREADY_EXISTS" // errInfo
	membershipNotFound        = "MEMBERSHIP_NOT_FOUND"        // errInfo
	membershipAlreadyExists   = "MEMBERSHIP_ALREADY_EXISTS"   // errInfo
	organizationInvalidDate   = "ORGANIZATION_INVALID_DATE"   // errInfo
)

var (
	ErrOrganizationNotFound      = sharedError.NewDomainError(organizationNotFound)
	ErrOrganizationAlreadyExists = sharedError.NewDomainError(organizationAlreadyExists)
	ErrMembershipNotFound        = sharedError.NewDomainError(membershipNotFound)
	ErrMembershipAlreadyExists   = sharedError.NewDomainError(membershipAlreadyExists)
	ErrInvalidDate               = sharedError.NewDomainError(organizationInvalidDate)
)

func init() {
	sharedError.RegisterDomainErrorResponse(organizationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ORG-001",
		Message: "Organization not found.",
	})

	sharedError.RegisterDomainErrorResponse(organizationAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "ORG-002",
		Message: "An organization with this id already exists.",
	})

	sharedError.RegisterDomainErrorResponse(membershipNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBERSHIP-001",
		Message: "Membership not found.",
	})

	sharedError.RegisterDomainErrorResponse(membershipAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBERSHIP-002",
		Message: "Member is already part of this organization.",
	})

	sharedError.RegisterDomainErrorResponse(organizationInvalidDate, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORG-003",
		Message: "Dates must be formatted as YYYY-MM-DD.",
	})
}
