package middleware

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// developmentMode controls whether unexpected errors leak their detail into
// responses. Production responses carry a generic message only.
var developmentMode = false

// SetDevelopmentMode toggles detailed error responses
func SetDevelopmentMode(enabled bool) {
	developmentMode = enabled
}

// HandleAPIError maps an application error onto the response envelope and
// writes it with the matching HTTP status
func HandleAPIError(c *gin.Context, err error) {
	log := logger.WithComponent("http")

	status, response := mapError(err, log)
	c.AbortWithStatusJSON(status, response)
}

func mapError(err error, log zerolog.Logger) (int, dto.APIResponse) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewValidationErrorResponse(message, fieldErrorsFromDetails(custom))

	// Duplicate-resource conflicts are reported as plain bad requests
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		return http.StatusBadRequest, dto.NewErrorResponse(message)

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidOperation),
		errors.Is(err, apperrors.ErrLastAdminProtection):
		return http.StatusBadRequest, dto.NewErrorResponse(message)

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrAccountDisabled),
		errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.NewErrorResponse(message)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorResponse(message)

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(message)

	default:
		log.Error().Err(err).Msg("Unhandled error")
		if developmentMode {
			return http.StatusInternalServerError, dto.NewErrorResponse(message)
		}
		return http.StatusInternalServerError, dto.NewErrorResponse("an internal error occurred")
	}
}

// fieldErrorsFromDetails lifts the per-field messages of a validation error
// into the envelope's errors list, ordered by field name for stable output
func fieldErrorsFromDetails(custom *apperrors.CustomError) []dto.FieldError {
	if custom == nil || len(custom.Details) == 0 {
		return nil
	}

	fields := make([]string, 0, len(custom.Details))
	for field := range custom.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]dto.FieldError, 0, len(fields))
	for _, field := range fields {
		msg, _ := custom.Details[field].(string)
		out = append(out, dto.FieldError{Field: field, Message: msg})
	}
	return out
}

// HandleBindingError writes a 400 envelope for a failed request binding
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		dto.NewValidationErrorResponse("validation failed", dto.FieldErrorsFromBinding(err)))
}
