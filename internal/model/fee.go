package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee status values
const (
	FeeUnpaid = "unpaid"
	FeePaid   = "paid"
)

// Fee is a financial obligation owed by a member to an organization. The
// transaction id is supplied by the client and is immutable after creation.
// Amounts are stored as DECIMAL(10,2); monetary math stays in decimal.Decimal
// end to end, never float64.
type Fee struct {
	TransactionID  string          `gorm:"column:transaction_id;type:VARCHAR(255);primaryKey" json:"transactionId"`
	Status         string          `gorm:"column:status;type:VARCHAR(6);not null" json:"status"`
	PaymentDate    *time.Time      `gorm:"column:payment_date;type:date" json:"paymentDate"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	Type           string          `gorm:"column:type;type:VARCHAR(50)" json:"type"`
	Semester       string          `gorm:"column:semester;type:VARCHAR(12)" json:"semester"`
	AcademicYear   string          `gorm:"column:academic_year;type:VARCHAR(9)" json:"academicYear"`
	IsLate         bool            `gorm:"column:is_late" json:"isLate"`
	StudentNumber  string          `gorm:"column:student_number;type:VARCHAR(10);not null" json:"studentNumber"`
	OrganizationID string          `gorm:"column:organization_id;type:VARCHAR(255);not null" json:"organizationId"`
}

// TableName specifies the table name for Fee
func (*Fee) TableName() string {
	return "fee"
}
