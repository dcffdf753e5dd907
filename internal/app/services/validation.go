package services

import (
	"regexp"
	"strings"

	"github.com/campushub/backend/internal/pkg/apperrors"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)
)

// validateUsername checks the 3-30 alphanumeric username constraint
func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return apperrors.NewValidationError("validation failed", map[string]string{
			"username": "username must be 3-30 alphanumeric characters",
		})
	}
	return nil
}

// validateEmail checks the email format
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !emailRegex.MatchString(email) {
		return apperrors.NewValidationError("validation failed", map[string]string{
			"email": "a valid email address is required",
		})
	}
	return nil
}

// validatePassword checks the minimum password length
func validatePassword(password string) error {
	if len(password) < 6 {
		return apperrors.NewValidationError("validation failed", map[string]string{
			"password": "password must be at least 6 characters long",
		})
	}
	return nil
}

// validatePhone checks the phone number format
func validatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return apperrors.NewValidationError("validation failed", map[string]string{
			"phone": "phone number format is invalid",
		})
	}
	return nil
}
