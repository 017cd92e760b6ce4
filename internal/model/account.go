package model

import "time"

// Account roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Account is a login identity. Student accounts carry the student number they
// are allowed to view; admin accounts have none.
type Account struct {
	Username      string  `gorm:"column:username;type:VARCHAR(50);primaryKey"`
	Password      string  `gorm:"column:password;type:VARCHAR(60);not null"` // bcrypt hash
	Role          string  `gorm:"column:role;type:VARCHAR(10);not null"`
	StudentNumber *string `gorm:"column:student_number;type:VARCHAR(10)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for Account
func (*Account) TableName() string {
	return "account"
}
