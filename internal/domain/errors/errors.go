package errors

import (
	"net/http"

	"socksflow/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// GenericFailureMessage is shown when the API gives no usable detail.
const GenericFailureMessage = "Something went wrong. Please try again."

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the highlighted fields",
		"",
	)

	ErrUnknownPlan = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLAN",
		"The selected plan is not available",
		"",
	)

	ErrProfileIncomplete = NewBaseError(
		http.StatusConflict,
		"PROFILE_INCOMPLETE",
		"Please complete your profile first",
		"",
	)

	// Mutation-related errors
	ErrMutationInProgress = NewBaseError(
		http.StatusConflict,
		"MUTATION_IN_PROGRESS",
		"Your previous request is still being processed",
		"",
	)

	ErrTransitionNotAllowed = NewBaseError(
		http.StatusConflict,
		"TRANSITION_NOT_ALLOWED",
		"This action is not available in the current state",
		"",
	)

	// Upstream-related errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		GenericFailureMessage,
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The page you are looking for does not exist",
		"",
	)
)

// APIError is a rejection reported by the external SocksFlow API.
// It never implies partial success.
type APIError struct {
	status  int
	message string
}

// NewAPIError creates an API error from the upstream status and its human-readable detail.
func NewAPIError(status int, message string) *APIError {
	return &APIError{status: status, message: message}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return http.StatusText(e.status) + ": " + e.Message()
}

// Status returns the upstream HTTP status.
func (e *APIError) Status() int {
	return e.status
}

// HTTPCode maps upstream client errors through and upstream server errors to 502.
func (e *APIError) HTTPCode() int {
	if e.status >= http.StatusInternalServerError || e.status == 0 {
		return http.StatusBadGateway
	}

	return e.status
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	switch {
	case e.status == http.StatusUnauthorized:
		return "UPSTREAM_UNAUTHORIZED"
	case e.status == http.StatusNotFound:
		return "UPSTREAM_NOT_FOUND"
	case e.status >= http.StatusInternalServerError || e.status == 0:
		return "UPSTREAM_FAILED"
	default:
		return "UPSTREAM_REJECTED"
	}
}

// Message returns the upstream detail, or a generic fallback when there is none.
func (e *APIError) Message() string {
	if e.message == "" || e.status >= http.StatusInternalServerError {
		return GenericFailureMessage
	}

	return e.message
}

// Details returns the raw upstream detail.
func (e *APIError) Details() string {
	return e.message
}

// IsUnauthorized reports whether err is an upstream 401, meaning the stored token
// is no longer accepted and the session must be torn down.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.status == http.StatusUnauthorized
	}

	return errors.Is(err, ErrUnauthenticated)
}

// UserMessage extracts a message suitable for a banner from any error.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return GenericFailureMessage
}
