package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithDetails adds detailed error information.
// The copy keeps identity with the original for errors.Is through Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Session and token errors
var (
	ErrAuthenticationRequired = NewBaseError(
		http.StatusForbidden,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Malformed token",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrPlatformMismatch = NewBaseError(
		http.StatusForbidden,
		"PLATFORM_MISMATCH",
		"Token was issued for a different platform",
		"",
	)

	ErrPlatformNotAllowed = NewBaseError(
		http.StatusForbidden,
		"PLATFORM_NOT_ALLOWED",
		"Sign-in from this platform is not allowed for the account role",
		"",
	)

	ErrInsufficientRole = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_ROLE",
		"Insufficient role for this resource",
		"",
	)
)

// Account and credential errors.
// ErrUnknownHandle and ErrBadSecret share one public code so a caller cannot
// tell which half of the credentials was wrong.
var (
	ErrUnknownHandle = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid handle or secret",
		"",
	)

	ErrBadSecret = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid handle or secret",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"Account is inactive",
		"",
	)
)

// Device binding errors
var (
	ErrDeviceInfoRequired = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_INFO_REQUIRED",
		"Device information is required",
		"",
	)

	ErrDeviceInfoMalformed = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_INFO_MALFORMED",
		"Device information is malformed",
		"",
	)

	ErrDeviceInfoNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_INFO_NOT_ALLOWED",
		"Device information must not be supplied for this account",
		"",
	)

	ErrDeviceMismatch = NewBaseError(
		http.StatusForbidden,
		"DEVICE_MISMATCH",
		"Device does not match the registered device",
		"",
	)

	ErrDeviceNotBound = NewBaseError(
		http.StatusForbidden,
		"DEVICE_NOT_BOUND",
		"No device is registered for this account",
		"",
	)

	ErrDeviceBindingForbidden = NewBaseError(
		http.StatusForbidden,
		"DEVICE_BINDING_FORBIDDEN",
		"Account must not carry a device binding",
		"",
	)
)

// General errors
var (
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, retry after the current window",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUpstreamFailure = NewBaseError(
		http.StatusInternalServerError,
		"UPSTREAM_FAILURE",
		"Service temporarily unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError wraps a directory or counter-store failure. It reports as
// UPSTREAM_FAILURE and keeps the cause for logs and debug mode.
type UpstreamError struct {
	err     error
	details string
}

// NewUpstreamError creates an upstream failure error
func NewUpstreamError(err error, details string) AppError {
	return &UpstreamError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the cause
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, ErrUpstreamFailure) hold.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return ErrUpstreamFailure.HTTPCode()
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return ErrUpstreamFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return ErrUpstreamFailure.Message()
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Error()
}
