package errors

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"marketplace/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches errors of the same business code so that WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the highlighted fields",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrStockExceeded = NewBaseError(
		http.StatusConflict,
		"STOCK_EXCEEDED",
		"Requested quantity exceeds available stock",
		"",
	)

	ErrAlreadyInWishlist = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_WISHLIST",
		"Product is already in your wishlist",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	// Order-related errors
	ErrOrderNotCancellable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CANCELLABLE",
		"This order can no longer be cancelled",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_ORDER_TRANSITION",
		"Order status cannot change this way",
		"",
	)

	// Authentication-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Sign-in session expired, please try again",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// KYC-related errors
	ErrKYCStepLocked = NewBaseError(
		http.StatusConflict,
		"KYC_STEP_LOCKED",
		"Complete the previous steps first",
		"",
	)

	ErrKYCInvalidTransition = NewBaseError(
		http.StatusConflict,
		"KYC_INVALID_TRANSITION",
		"Verification is not in the right state for this action",
		"",
	)

	ErrKYCAlreadySubmitted = NewBaseError(
		http.StatusConflict,
		"KYC_ALREADY_SUBMITTED",
		"Your application has already been submitted",
		"",
	)

	ErrKYCIncomplete = NewBaseError(
		http.StatusBadRequest,
		"KYC_INCOMPLETE",
		"Some required information is missing",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email address",
		"",
	)

	// Location-related errors
	ErrNoLocationFix = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_LOCATION_FIX",
		"Could not determine your location, please try again",
		"",
	)

	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Could not resolve an address for your location",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// APIError is a failed response from the marketplace backend, implementing the AppError interface
type APIError struct {
	Status  int
	Code    string
	message string
	Path    string
}

// NewAPIError creates an error for a non-2xx backend response.
// An empty message falls back to the HTTP status text.
func NewAPIError(status int, code, message, path string) *APIError {
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
	}

	return &APIError{
		Status:  status,
		Code:    code,
		message: message,
		Path:    path,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api %s: %d %s", e.Path, e.Status, e.message)
}

// HTTPCode returns the HTTP status code
func (e *APIError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	if e.Code != "" {
		return e.Code
	}

	return "API_ERROR"
}

// Message returns the backend's message
func (e *APIError) Message() string {
	return e.message
}

// Details returns the request path
func (e *APIError) Details() string {
	return e.Path
}

// NetworkError represents a transport failure before any response arrived
type NetworkError struct {
	err  error
	path string
}

// NewNetworkError creates a transport-level error
func NewNetworkError(err error, path string) AppError {
	return &NetworkError{err: err, path: path}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return errors.Wrapf(e.err, "request %s failed", e.path).Error()
}

// Unwrap exposes the transport error
func (e *NetworkError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_ERROR"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	if errors.Is(e.err, context.DeadlineExceeded) {
		return "The server took too long to respond"
	}
	if netErr, ok := errors.AsType[net.Error](e.err); ok && netErr.Timeout() {
		return "The server took too long to respond"
	}

	return "Network error, please check your connection"
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.err.Error()
}

// Message converts any error into the human-readable text stored in a slice.
func Message(err error) string {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Message()
	}

	if errors.Is(err, context.Canceled) {
		return "Request was cancelled"
	}

	return err.Error()
}
