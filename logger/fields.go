package logger

import "strings"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldUserID    = "user_id"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldEmail     = "email"
	FieldClientIP  = "client_ip"
	FieldErrorKind = "error_kind"
	FieldErrorCode = "error_code"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

const redactedValue = "[REDACTED]"

// sensitiveKeys are field names whose values must never reach a log record.
var sensitiveKeys = []string{
	"password",
	"passwordDigest",
	"password_digest",
	"digest",
	"token",
	"authorization",
	"secret",
	"credential",
}

// Redact returns a copy of fields with known-sensitive keys replaced by a
// placeholder. Matching is case-insensitive on key substrings so that e.g.
// "newPassword" and "Authorization" are caught. A nil map returns nil.
func Redact(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if isSensitiveKey(k) {
			out[k] = redactedValue
			continue
		}
		out[k] = v
	}
	return out
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
