package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType string

// Domain/Business Logic Errors - errors related to request validation and lookups
const (
	ValidationError          ErrorType = "VALIDATION_ERROR"
	NotFoundError            ErrorType = "NOT_FOUND_ERROR"
	TimezoneUnavailableError ErrorType = "TIMEZONE_UNAVAILABLE_ERROR"
)

// Infrastructure Errors - errors related to external systems and services
const (
	ExternalAPIError ErrorType = "EXTERNAL_API_ERROR"
)

// System/Startup Errors - errors related to process setup and the asset registry
const (
	ConfigurationError     ErrorType = "CONFIGURATION_ERROR"
	DuplicateResourceError ErrorType = "DUPLICATE_RESOURCE_ERROR"
	MissingAssetError      ErrorType = "MISSING_ASSET_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewTimezoneUnavailableError reports a non-OK timezone provider status.
// The provider status string ("ZERO_RESULTS", "OVER_QUERY_LIMIT", ...) is
// carried as the message so handlers can map it to a response code.
func NewTimezoneUnavailableError(status string) *AppError {
	return New(TimezoneUnavailableError, status)
}

// Infrastructure Error Constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Startup Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewDuplicateResourceError(message string) *AppError {
	return New(DuplicateResourceError, message)
}

func NewMissingAssetError(message string) *AppError {
	return New(MissingAssetError, message)
}
