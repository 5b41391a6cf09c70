package errors

// ErrorCode represents a machine-readable error code. Codes are part of the
// client contract and must stay stable across releases.
type ErrorCode string

const (
	// CodeValidation indicates the request body or parameters failed schema validation.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeAuthentication indicates a missing or unverifiable credential.
	CodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	// CodeAuthorization indicates the authenticated caller lacks the required role or ownership.
	CodeAuthorization ErrorCode = "AUTHORIZATION_ERROR"
	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND_ERROR"
	// CodeConflict indicates the request conflicts with existing state (e.g. duplicate email).
	CodeConflict ErrorCode = "CONFLICT_ERROR"
	// CodeRateLimited indicates the caller exceeded a request budget.
	CodeRateLimited ErrorCode = "RATE_LIMIT_EXCEEDED"
	// CodeInternal indicates an unexpected server-side failure.
	CodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Token-specific refinements of CodeAuthentication. The client may use these
// to distinguish an expired session (re-login) from a rejected credential.
const (
	// CodeInvalidToken indicates a token that failed verification for any
	// reason other than expiry. The reason is deliberately not disclosed.
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// CodeExpiredToken indicates a well-formed token past its expiry.
	CodeExpiredToken ErrorCode = "EXPIRED_TOKEN"
)

// CodeDatabase indicates a storage-layer failure that is not a uniqueness
// conflict or a missing row.
const CodeDatabase ErrorCode = "DATABASE_ERROR"

// Kind is the closed set of failure categories. Classification is an
// exhaustive switch over Kind rather than type inspection.
type Kind int

const (
	// KindUnexpected is the zero value so that a forgotten kind never
	// accidentally reads as operational.
	KindUnexpected Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindRateLimited
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unexpected"
	}
}

// Operational reports whether the kind is an anticipated failure whose
// message is safe to return to the caller.
func (k Kind) Operational() bool {
	return k != KindUnexpected
}

// httpStatusByKind maps each kind to its default HTTP status.
var httpStatusByKind = map[Kind]int{
	KindValidation:     400,
	KindAuthentication: 401,
	KindAuthorization:  403,
	KindNotFound:       404,
	KindConflict:       409,
	KindRateLimited:    429,
	KindUnexpected:     500,
}

// StatusFor returns the default HTTP status for a kind.
func StatusFor(k Kind) int {
	if s, ok := httpStatusByKind[k]; ok {
		return s
	}
	return 500
}
