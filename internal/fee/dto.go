package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateFeeRequest struct {
	TransactionID  string          `json:"transactionId" binding:"required,max=255"`
	Status         string          `json:"status" binding:"required,oneof=paid unpaid"`
	PaymentDate    *string         `json:"paymentDate"` // YYYY-MM-DD, required when status=paid
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Type           string          `json:"type" binding:"required,max=50"`
	Semester       string          `json:"semester" binding:"required,semester"`
	AcademicYear   string          `json:"academicYear" binding:"required,academicyear"`
	IsLate         bool            `json:"isLate"`
	StudentNumber  string          `json:"studentNumber" binding:"required,max=10"`
	OrganizationID string          `json:"organizationId" binding:"required,max=255"`
}

// UpdateFeeRequest is a partial update. The transaction id is immutable and
// deliberately absent here.
type UpdateFeeRequest struct {
	Status       *string          `json:"status" binding:"omitempty,oneof=paid unpaid"`
	PaymentDate  *string          `json:"paymentDate"` // YYYY-MM-DD
	Amount       *decimal.Decimal `json:"amount"`
	Type         *string          `json:"type" binding:"omitempty,max=50"`
	Semester     *string          `json:"semester" binding:"omitempty,semester"`
	AcademicYear *string          `json:"academicYear" binding:"omitempty,academicyear"`
	IsLate       *bool            `json:"isLate"`
}

// FeeRow is a fee joined with the names the dashboard's fee table shows.
type FeeRow struct {
	TransactionID    string          `json:"transactionId"`
	Status           string          `json:"status"`
	PaymentDate      *time.Time      `json:"paymentDate"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	Semester         string          `json:"semester"`
	AcademicYear     string          `json:"academicYear"`
	IsLate           bool            `json:"isLate"`
	StudentNumber    string          `json:"studentNumber"`
	MemberName       string          `json:"memberName"`
	OrganizationID   string          `json:"organizationId"`
	OrganizationName string          `json:"organizationName"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
