package errors

import (
	stderrors "errors"
)

// ErrorResponse is the fixed client-facing error envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody contains the error details sent to clients.
type ErrorBody struct {
	Message string         `json:"message"`
	Code    ErrorCode      `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to the client envelope. Unexpected errors
// never expose their cause unless debug is enabled.
func (e *AppError) ToResponse(debug bool) ErrorResponse {
	body := ErrorBody{
		Message: e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
	if !e.Operational() && debug && e.Cause != nil {
		if body.Details == nil {
			body.Details = make(map[string]any)
		}
		body.Details["cause"] = e.Cause.Error()
	}
	return ErrorResponse{Success: false, Error: body}
}

// Classify maps any error to an *AppError. Errors already expressed in the
// taxonomy pass through; everything else becomes KindUnexpected.
func Classify(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
