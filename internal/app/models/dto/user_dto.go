package dto

import (
	"github.com/campushub/backend/internal/app/models"
)

// CreateUserRequest is the admin user-creation contract
type CreateUserRequest struct {
	Username  string      `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=6"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Role      models.Role `json:"role" binding:"required"`
}

// UpdateUserRequest is the admin user-update contract
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// UserListResponse is a page of users with pagination metadata
type UserListResponse struct {
	Users      []*models.User `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
