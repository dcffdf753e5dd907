package dto

import (
	"github.com/campushub/backend/internal/app/models"
)

// RegisterRequest represents a registration request for either role.
// StudentData is only consulted when Role is "student"; omitted fields are
// filled with documented defaults.
type RegisterRequest struct {
	Username    string           `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email       string           `json:"email" binding:"required,email"`
	Password    string           `json:"password" binding:"required,min=6"`
	FirstName   string           `json:"firstName" binding:"required"`
	LastName    string           `json:"lastName" binding:"required"`
	Role        models.Role      `json:"role" binding:"required"`
	StudentData *StudentDataSeed `json:"studentData,omitempty"`
}

// StudentDataSeed carries the optional student profile fields supplied at
// registration time
type StudentDataSeed struct {
	StudentID    string                     `json:"studentId,omitempty"`
	DateOfBirth  *string                    `json:"dateOfBirth,omitempty"` // RFC 3339 date
	Gender       string                     `json:"gender,omitempty"`
	Phone        string                     `json:"phone,omitempty"`
	Address      *models.AddressPatch       `json:"address,omitempty"`
	AcademicInfo *models.AcademicInfoPatch  `json:"academicInfo,omitempty"`
	GuardianInfo *models.GuardianInfoPatch  `json:"guardianInfo,omitempty"`
	Emergency    *models.EmergencyContactPatch `json:"emergencyContact,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change for the calling user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UpdateAccountRequest updates the calling user's basic account fields
type UpdateAccountRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// ProfileResponse is the caller's account, with the linked student record ID
// for student-role users
type ProfileResponse struct {
	User            *models.User `json:"user"`
	StudentRecordID *int64       `json:"studentRecordId,omitempty"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	ExpiresIn    int64        `json:"expiresIn" example:"86400"`
	IsFirstAdmin bool         `json:"isFirstAdmin,omitempty"`
}
