package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Pizza-specific errors
	ErrPizzaNotFound = "PIZZA_NOT_FOUND"

	// Order-specific errors
	ErrOrderNotFound     = "ORDER_NOT_FOUND"
	ErrOrderInvalidData  = "ORDER_INVALID_DATA"
	ErrOrderNotEditable  = "ORDER_NOT_EDITABLE"
	ErrOrderItemNotFound = "ORDER_ITEM_NOT_FOUND"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
