package model

import "time"

// Organization scope values
const (
	ScopeUniversity = "university"
	ScopeCollege    = "college"
	ScopeDepartment = "department"
)

// Organization status values
const (
	OrgStatusActive   = "active"
	OrgStatusInactive = "inactive"
)

// Organization is a student organization. Its id is a registrar-issued code,
// not an auto-increment.
type Organization struct {
	OrganizationID string     `gorm:"column:organization_id;type:VARCHAR(255);primaryKey" json:"organizationId"`
	Name           string     `gorm:"column:name;type:VARCHAR(255);not null" json:"name"`
	Scope          string     `gorm:"column:scope;type:VARCHAR(15)" json:"scope"`
	Type           string     `gorm:"column:type;type:VARCHAR(50)" json:"type"`
	Description    string     `gorm:"column:description;type:TEXT" json:"description"`
	Address        string     `gorm:"column:address;type:VARCHAR(255)" json:"address"`
	ContactEmail   string     `gorm:"column:contact_email;type:VARCHAR(255)" json:"contactEmail"`
	ContactPhone   string     `gorm:"column:contact_phone;type:VARCHAR(255)" json:"contactPhone"`
	Status         string     `gorm:"column:status;type:VARCHAR(10);default:active" json:"status"`
	FoundedDate    *time.Time `gorm:"column:founded_date;type:date" json:"foundedDate"`

	Memberships []Membership `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
	Fees        []Fee        `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE" json:"fees,omitempty"`
}

// TableName specifies the table name for Organization
func (*Organization) TableName() string {
	return "organization"
}
