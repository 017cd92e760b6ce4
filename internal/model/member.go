package model

import "time"

// Member is a student tracked by the system. The student number is assigned
// by the university and never reused, so it serves as the natural key.
type Member struct {
	StudentNumber string     `gorm:"column:student_number;type:VARCHAR(10);primaryKey" json:"studentNumber"`
	Name          string     `gorm:"column:name;type:VARCHAR(255);not null" json:"name"`
	DegreeProgram string     `gorm:"column:degree_program;type:VARCHAR(255)" json:"degreeProgram"`
	Age           int        `gorm:"column:age" json:"age"`
	Gender        string     `gorm:"column:gender;type:VARCHAR(255)" json:"gender"`
	DateGraduated *time.Time `gorm:"column:date_graduated;type:date" json:"dateGraduated"`

	Memberships []Membership `gorm:"foreignKey:StudentNumber;references:StudentNumber;constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
	Fees        []Fee        `gorm:"foreignKey:StudentNumber;references:StudentNumber;constraint:OnDelete:CASCADE" json:"fees,omitempty"`
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}
