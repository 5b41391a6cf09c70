package errors

import (
	"fmt"
	"time"
)

// AppError is the unified application error type.
type AppError struct {
	// Kind is the failure category driving HTTP status and logging level.
	Kind Kind `json:"-"`
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable, client-safe error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional structured context (e.g. field violations).
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. Never serialized to clients.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Operational reports whether the error carries a pre-approved client-safe message.
func (e *AppError) Operational() bool { return e.Kind.Operational() }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an AppError of the given kind with the kind's default status.
func New(kind Kind, code ErrorCode, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: StatusFor(kind),
	}
}

// --- Constructors, one per taxonomy entry ---

// FieldViolation is a single schema violation reported by the validator.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validation creates a 400 error carrying the complete list of field violations.
func Validation(violations []FieldViolation) *AppError {
	e := New(KindValidation, CodeValidation, "Invalid request data.")
	if len(violations) > 0 {
		e = e.WithDetail("fields", violations)
	}
	return e
}

// Authentication creates a 401 error for a missing or malformed credential.
func Authentication(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required."
	}
	return New(KindAuthentication, CodeAuthentication, reason)
}

// InvalidToken creates a 401 error for a token that failed verification.
// The message never reveals why beyond "invalid".
func InvalidToken() *AppError {
	return New(KindAuthentication, CodeInvalidToken, "Invalid authentication token.")
}

// TokenExpired creates a 401 error for an expired token.
func TokenExpired() *AppError {
	return New(KindAuthentication, CodeExpiredToken, "Your session has expired. Please log in again.")
}

// Authorization creates a 403 error for insufficient role or ownership.
func Authorization(reason string) *AppError {
	if reason == "" {
		reason = "You don't have permission to perform this action."
	}
	return New(KindAuthorization, CodeAuthorization, reason)
}

// NotFound creates a 404 error for a missing resource.
func NotFound(resource string) *AppError {
	return New(KindNotFound, CodeNotFound, fmt.Sprintf("The requested %s was not found.", resource)).
		WithDetail("resource", resource)
}

// Conflict creates a 409 error for a state conflict.
func Conflict(reason string) *AppError {
	if reason == "" {
		reason = "The request conflicts with existing data."
	}
	return New(KindConflict, CodeConflict, reason)
}

// RateLimited creates a 429 error with a retry hint.
func RateLimited(retryAfter time.Duration) *AppError {
	e := New(KindRateLimited, CodeRateLimited, "Too many requests. Please try again later.")
	if retryAfter > 0 {
		e = e.WithDetail("retryAfterSeconds", int(retryAfter.Seconds()+0.5))
	}
	return e
}

// Database creates a 500 error for a storage failure. The cause is kept for
// logging and never shown to the client.
func Database(cause error) *AppError {
	return &AppError{
		Kind:       KindUnexpected,
		Code:       CodeDatabase,
		Message:    "A database error occurred. Please try again.",
		HTTPStatus: 500,
		Cause:      cause,
	}
}

// Internal creates a generic 500 error wrapping an unexpected cause.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:       KindUnexpected,
		Code:       CodeInternal,
		Message:    "An unexpected error occurred.",
		HTTPStatus: 500,
		Cause:      cause,
	}
}
