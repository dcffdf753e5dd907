package dto

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the standard response envelope for all endpoints
type APIResponse struct {
	Status  string       `json:"status" example:"success"`
	Message string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError carries a per-field validation message
type FieldError struct {
	Field   string `json:"field,omitempty" example:"email"`
	Message string `json:"message" example:"email is required"`
}

// NewSuccessResponse creates a success envelope with a payload
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope with a top-level message
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error envelope carrying per-field messages
func NewValidationErrorResponse(message string, errors []FieldError) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: message,
		Errors:  errors,
	}
}
