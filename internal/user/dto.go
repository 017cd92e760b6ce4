package user

import "github.com/shopspring/decimal"

// LateFeesQuery selects the student whose outstanding fees are listed.
type LateFeesQuery struct {
	StudentNumber string `form:"studentNumber" binding:"required"`
}

// LateFeeRow is one outstanding fee of a student, joined with the owed
// organization's name.
type LateFeeRow struct {
	TransactionID    string          `json:"transactionId"`
	OrganizationName string          `json:"organizationName"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Semester         string          `json:"semester"`
	AcademicYear     string          `json:"academicYear"`
	IsLate           bool            `json:"isLate"`
}
