package models

import (
	"errors"
	"fmt"
)

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
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrGroupNotFoundCode      = "INGREDIENT_GROUP_NOT_FOUND"
	ErrIngredientNotFoundCode = "INGREDIENT_NOT_FOUND"
	ErrPizzaNotFoundCode      = "PIZZA_NOT_FOUND"
	ErrOrderNotFoundCode      = "ORDER_NOT_FOUND"
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

// Sentinel domain errors. Services translate storage-level errors into
// these so controllers never have to know about gorm.
var (
	ErrGroupNotFound      = errors.New("ingredient group not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrPizzaNotFound      = errors.New("pizza not found")
	ErrOrderNotFound      = errors.New("order not found")

	// ErrInvalidCode means the supplied confirmation code did not match.
	// It is surfaced as a plain user-visible message, never as an HTTP
	// error status, and the order is left untouched.
	ErrInvalidCode = errors.New("invalid confirmation code")
)

// ValidationError is a malformed-input error. It always precedes any
// state change: an operation that returns one has persisted nothing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
