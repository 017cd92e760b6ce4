package model

// Membership status values
const (
	MembershipActive    = "active"
	MembershipInactive  = "inactive"
	MembershipAlumni    = "alumni"
	MembershipExpelled  = "expelled"
	MembershipSuspended = "suspended"
)

// Membership is one record of a member serving in an organization for one
// semester/role/status combination. It is a historical ledger: the same
// (student, organization) pair legitimately appears in multiple rows across
// semesters and roles. The uniqueness constraint spans all descriptive
// columns, not just the pair.
type Membership struct {
	ID             uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentNumber  string `gorm:"column:student_number;type:VARCHAR(10);not null;uniqueIndex:idx_membership_ledger" json:"studentNumber"`
	OrganizationID string `gorm:"column:organization_id;type:VARCHAR(255);not null;uniqueIndex:idx_membership_ledger" json:"organizationId"`
	Role           string `gorm:"column:role;type:VARCHAR(14);uniqueIndex:idx_membership_ledger" json:"role"`
	Status         string `gorm:"column:status;type:VARCHAR(10);uniqueIndex:idx_membership_ledger" json:"status"`
	Semester       string `gorm:"column:semester;type:VARCHAR(12);uniqueIndex:idx_membership_ledger" json:"semester"`
	AcademicYear   string `gorm:"column:academic_year;type:VARCHAR(9);uniqueIndex:idx_membership_ledger" json:"academicYear"`
	Committee      string `gorm:"column:committee;type:VARCHAR(255);uniqueIndex:idx_membership_ledger" json:"committee"`
}

// TableName specifies the table name for Membership
func (*Membership) TableName() string {
	return "membership"
}
