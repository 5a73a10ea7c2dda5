package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Username string `gorm:"uniqueIndex" json:"username"`

	// Points is the account's ledger balance. It is mutated only through
	// services.Debit / services.Credit and never goes negative.
	Points int `gorm:"default:0;check:points >= 0" json:"points"`

	// Enum stored as string, closed set {USER, STAFF, ADMIN}
	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	GoogleID string `gorm:"index" json:"-"` // set for OAuth accounts, empty otherwise

	Password string `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the account may use the staff console. Admins are
// staff for authorization purposes.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}
