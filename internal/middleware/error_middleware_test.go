package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder.Code, resp
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationError("validation failed", nil), http.StatusBadRequest},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"duplicate username", apperrors.ErrUsernameTaken, http.StatusBadRequest},
		{"duplicate student id", apperrors.ErrStudentIDAlreadyExists, http.StatusBadRequest},
		{"generic conflict", apperrors.NewConflictError("already exists"), http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"last admin", apperrors.NewInvalidOperationError("cannot delete the last admin user"), http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("insufficient permissions"), http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"unknown error", assertUnknownError{}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := runHandler(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, dto.StatusError, resp.Status)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

type assertUnknownError struct{}

func (assertUnknownError) Error() string { return "boom" }

func TestValidationErrorCarriesFieldMessages(t *testing.T) {
	err := apperrors.NewValidationError("validation failed", map[string]string{
		"email":    "a valid email address is required",
		"password": "password must be at least 6 characters long",
	})

	status, resp := runHandler(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, resp.Errors, 2)
	// Sorted by field name for stable output
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "password", resp.Errors[1].Field)
}

func TestUnknownErrorDetailHiddenOutsideDevelopment(t *testing.T) {
	SetDevelopmentMode(false)
	_, resp := runHandler(t, assertUnknownError{})
	assert.Equal(t, "an internal error occurred", resp.Message)

	SetDevelopmentMode(true)
	defer SetDevelopmentMode(false)
	_, resp = runHandler(t, assertUnknownError{})
	assert.Equal(t, "boom", resp.Message)
}

func TestCustomErrorMessagePreferred(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrUnauthenticated, "admin registration requires an admin token")

	status, resp := runHandler(t, err)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "admin registration requires an admin token", resp.Message)
}
