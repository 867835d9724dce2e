package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents categorized error types.
// These codes are stable and can be used for programmatic error handling.
type ErrorCode string

const (
	// ErrCodeInvalidOptionType means one of the boolean policy switches was
	// configured with a non-boolean value.
	ErrCodeInvalidOptionType ErrorCode = "invalid_option_type"

	// ErrCodeInvalidCategoryConfiguration means a category entry had no
	// identifier, or its value was not a list of attribute names.
	ErrCodeInvalidCategoryConfiguration ErrorCode = "invalid_category_configuration"
)

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is a structured error with code, message, and optional cause.
// Both error codes are raised only during policy construction; request
// processing has no defined error conditions.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// InvalidOptionTypeError creates an error for a policy switch configured with
// a non-boolean value.
func InvalidOptionTypeError(option string, value any) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidOptionType,
		Message: fmt.Sprintf("The value of %q must be a boolean, got %T", option, value),
	}
}

// MissingCategoryIdentifierError creates an error for a category entry whose
// identifier was omitted (a positional entry where a named key was expected).
func MissingCategoryIdentifierError(value any) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCategoryConfiguration,
		Message: fmt.Sprintf("Category identifier missing for entry %v", value),
	}
}

// InvalidCategoryAttributeListError creates an error for a category whose
// value is not a list of attribute names.
func InvalidCategoryAttributeListError(category string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCategoryConfiguration,
		Message: fmt.Sprintf("The attributes for category %q must be a list of attribute names", category),
	}
}

// ErrEntityNotFound is returned when an entity is not found in a category source.
var ErrEntityNotFound = errors.New("entity not found")
