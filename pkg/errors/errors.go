package errors

import "net/http"

// Kind identifies a specific failure class so clients can render an
// actionable message instead of a generic one.
type Kind string

const (
	KindNotFound              Kind = "NOT_FOUND"
	KindOutOfWindow           Kind = "OUT_OF_WINDOW"
	KindPerAccountCapExceeded Kind = "PER_ACCOUNT_CAP_EXCEEDED"
	KindGlobalCapExceeded     Kind = "GLOBAL_CAP_EXCEEDED"
	KindInsufficientPoints    Kind = "INSUFFICIENT_POINTS"
	KindInvalidAmount         Kind = "INVALID_AMOUNT"
	KindConcurrencyConflict   Kind = "CONCURRENCY_CONFLICT"
	KindUnauthorized          Kind = "UNAUTHORIZED"
	KindForbidden             Kind = "FORBIDDEN"
	KindConflict              Kind = "CONFLICT"
	KindInvalidRequest        Kind = "INVALID_REQUEST"
	KindInternal              Kind = "INTERNAL"
)

// AppError is a custom error type that includes an HTTP status code and a
// machine-readable kind.
type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, KindInvalidRequest, "Invalid request parameters")
	ErrUnauthorized   = NewAppError(http.StatusUnauthorized, KindUnauthorized, "Unauthorized access")
	ErrForbidden      = NewAppError(http.StatusForbidden, KindForbidden, "Access denied")
	ErrNotFound       = NewAppError(http.StatusNotFound, KindNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, KindInternal, "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, KindInvalidRequest, "Rate limit exceeded")
)

// Redemption workflow errors. Every eligibility failure carries its own kind;
// callers must never collapse these into a generic failure.
var (
	ErrInvalidAmount         = NewAppError(http.StatusBadRequest, KindInvalidAmount, "Amount must be a positive integer")
	ErrInsufficientPoints    = NewAppError(http.StatusBadRequest, KindInsufficientPoints, "Not enough points for this reward")
	ErrOutOfWindow           = NewAppError(http.StatusBadRequest, KindOutOfWindow, "Not currently available")
	ErrPerAccountCapExceeded = NewAppError(http.StatusBadRequest, KindPerAccountCapExceeded, "Redemption limit reached for this account")
	ErrGlobalCapExceeded     = NewAppError(http.StatusBadRequest, KindGlobalCapExceeded, "This reward is fully redeemed")
	ErrConcurrencyConflict   = NewAppError(http.StatusConflict, KindConcurrencyConflict, "Could not complete request due to concurrent updates, please retry")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, KindInvalidRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, KindUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, KindForbidden, msg)
}

func Conflict(msg string) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, KindInternal, msg)
}
