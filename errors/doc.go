// Package errors provides the unified error taxonomy for userd.
//
// Every failure in the request path is expressed as an *AppError carrying a
// Kind (a closed enum), a stable machine-readable code, an HTTP status, and
// a client-safe message. Operational kinds (everything except KindUnexpected)
// are safe to describe to the caller; unexpected errors are logged with full
// detail server-side and surfaced as a generic 500.
//
// Usage:
//
//	if user == nil {
//	    return errors.NotFound("user")
//	}
//	appErr := errors.Classify(err) // any error -> *AppError
package errors
