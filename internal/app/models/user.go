package models

import (
	"time"
)

// Role is the access role of a user account
type Role string

// Supported roles
const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// IsValid reports whether the role is one of the supported values
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Username    string     `json:"username" db:"username" example:"jdoe"`
	Email       string     `json:"email" db:"email" example:"jdoe@college.edu"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	Role        Role       `json:"role" db:"role" example:"student"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLogin,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used on generated documents
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
