package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// AuthMiddleware authenticates requests and enforces role policies. The
// token's subject is re-loaded on every request so deactivated or deleted
// accounts lose access immediately.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// RequireRoles returns a handler that authenticates the request and requires
// the user to hold one of the given roles. With no roles given, any
// authenticated user passes.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.authenticate(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		if len(roles) > 0 && !roleAllowed(user.Role, roles) {
			HandleAPIError(c, apperrors.NewForbiddenError("insufficient permissions for this resource"))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// AdminOnly restricts the route group to admin users
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return m.RequireRoles(models.RoleAdmin)
}

// StudentOnly restricts the route group to student users
func (m *AuthMiddleware) StudentOnly() gin.HandlerFunc {
	return m.RequireRoles(models.RoleStudent)
}

// AnyRole requires authentication without restricting the role
func (m *AuthMiddleware) AnyRole() gin.HandlerFunc {
	return m.RequireRoles()
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*models.User, error) {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return user, nil
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// CurrentUser reads the authenticated user from the request context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentUserID reads the authenticated user's ID from the request context
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
