package samlcategoryfilter

import (
	"github.com/philiph/saml-category-filter/internal/core/domain"
)

// Re-export error types from domain package
type ErrorCode = domain.ErrorCode
type AppError = domain.AppError

// Re-export error code constants
const (
	ErrCodeInvalidOptionType            = domain.ErrCodeInvalidOptionType
	ErrCodeInvalidCategoryConfiguration = domain.ErrCodeInvalidCategoryConfiguration
)

// Re-export error constructors
var (
	InvalidOptionTypeError            = domain.InvalidOptionTypeError
	MissingCategoryIdentifierError    = domain.MissingCategoryIdentifierError
	InvalidCategoryAttributeListError = domain.InvalidCategoryAttributeListError
)

// ErrEntityNotFound is returned by category sources for unknown entities.
var ErrEntityNotFound = domain.ErrEntityNotFound
