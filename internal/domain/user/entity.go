// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// Role distinguishes customers from shop administrators
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered account
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`
	Name         string `gorm:"size:255" json:"name"`
	Phone        string `gorm:"size:50" json:"phone,omitempty"`
	Role         Role   `gorm:"not null;size:20;default:'customer'" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user has administrator privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
