package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report 1: one row per (member, matching membership) pair.
type MemberRow struct {
	StudentNumber string `json:"studentNumber"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	DegreeProgram string `json:"degreeProgram"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Semester      string `json:"semester"`
	AcademicYear  string `json:"academicYear"`
	Committee     string `json:"committee"`
}

// Reports 2 and 10: unpaid amounts summed per student.
type DebtSummaryRow struct {
	StudentNumber string          `json:"studentNumber"`
	Name          string          `json:"name"`
	TotalUnpaid   decimal.Decimal `json:"totalUnpaid"`
}

// Report 3: one unpaid fee of one student, with the owed organization.
type UnpaidFeeRow struct {
	Semester         string          `json:"semester"`
	AcademicYear     string          `json:"academicYear"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	OrganizationName string          `json:"organizationName"`
}

// Report 4: executive committee roster.
type CommitteeMemberRow struct {
	StudentNumber string `json:"studentNumber"`
	Name          string `json:"name"`
	Role          string `json:"role"`
}

// Report 5: who held a role, reverse chronological.
type RoleHistoryRow struct {
	StudentNumber string `json:"studentNumber"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	AcademicYear  string `json:"academicYear"`
}

// Report 6: late payments with the payer's role at the time.
type LatePaymentRow struct {
	StudentNumber    string          `json:"studentNumber"`
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentDate      *time.Time      `json:"paymentDate"`
	OrganizationName string          `json:"organizationName"`
}

// Report 7: share of active vs. inactive memberships in the window.
type StatusShareRow struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Report 8: graduated members with an alumni membership in the organization.
type AlumnusRow struct {
	StudentNumber string     `json:"studentNumber"`
	Name          string     `json:"name"`
	DegreeProgram string     `json:"degreeProgram"`
	DateGraduated *time.Time `json:"dateGraduated"`
}

// Report 9: paid/unpaid totals as of a date.
type FeeTotalRow struct {
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
