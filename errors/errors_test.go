package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestKind_StatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuthentication, http.StatusUnauthorized},
		{KindAuthorization, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindUnexpected, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.kind); got != tc.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestKind_Operational(t *testing.T) {
	if KindUnexpected.Operational() {
		t.Error("KindUnexpected must not be operational")
	}
	for _, k := range []Kind{KindValidation, KindAuthentication, KindAuthorization, KindNotFound, KindConflict, KindRateLimited} {
		if !k.Operational() {
			t.Errorf("%s should be operational", k)
		}
	}
}

func TestValidation_CarriesAllViolations(t *testing.T) {
	violations := []FieldViolation{
		{Field: "email", Reason: "must be a valid email address"},
		{Field: "password", Reason: "must contain an uppercase letter"},
	}
	err := Validation(violations)
	if err.Code != CodeValidation {
		t.Errorf("expected %s, got %s", CodeValidation, err.Code)
	}
	got, ok := err.Details["fields"].([]FieldViolation)
	if !ok {
		t.Fatalf("expected fields detail, got %T", err.Details["fields"])
	}
	if len(got) != 2 {
		t.Errorf("expected 2 violations, got %d", len(got))
	}
}

func TestAuthentication_DefaultMessage(t *testing.T) {
	err := Authentication("")
	if err.Message != "Authentication required." {
		t.Errorf("unexpected default message: %q", err.Message)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
}

func TestTokenErrors_DistinguishExpiryFromInvalid(t *testing.T) {
	expired := TokenExpired()
	invalid := InvalidToken()
	if expired.Code == invalid.Code {
		t.Error("expired and invalid token codes must differ")
	}
	if expired.HTTPStatus != http.StatusUnauthorized || invalid.HTTPStatus != http.StatusUnauthorized {
		t.Error("both token errors must map to 401")
	}
}

func TestRateLimited_RetryAfterDetail(t *testing.T) {
	err := RateLimited(90 * time.Second)
	if err.Code != CodeRateLimited {
		t.Errorf("expected %s, got %s", CodeRateLimited, err.Code)
	}
	if got := err.Details["retryAfterSeconds"]; got != 90 {
		t.Errorf("expected retryAfterSeconds=90, got %v", got)
	}
}

func TestClassify_PassthroughAndFallback(t *testing.T) {
	orig := Conflict("email already in use")
	if got := Classify(fmt.Errorf("wrapped: %w", orig)); got != orig {
		t.Error("Classify should unwrap to the original AppError")
	}

	raw := stderrors.New("pq: connection reset")
	classified := Classify(raw)
	if classified.Kind != KindUnexpected {
		t.Errorf("raw errors must classify as unexpected, got %s", classified.Kind)
	}
	if classified.Cause != raw {
		t.Error("cause must be preserved for logging")
	}
}

func TestToResponse_NeverLeaksCauseByDefault(t *testing.T) {
	cause := stderrors.New("SELECT * FROM users failed")
	resp := Internal(cause).ToResponse(false)
	if resp.Success {
		t.Error("error envelope must have success=false")
	}
	if resp.Error.Details != nil {
		t.Errorf("unexpected details in non-debug response: %v", resp.Error.Details)
	}
	if resp.Error.Message != "An unexpected error occurred." {
		t.Errorf("internal message leaked: %q", resp.Error.Message)
	}
}

func TestToResponse_DebugIncludesCause(t *testing.T) {
	cause := stderrors.New("boom")
	resp := Internal(cause).ToResponse(true)
	if resp.Error.Details["cause"] != "boom" {
		t.Errorf("expected cause in debug response, got %v", resp.Error.Details)
	}

	// Operational errors never gain a cause detail, debug or not.
	op := Conflict("").WithCause(cause).ToResponse(true)
	if _, ok := op.Error.Details["cause"]; ok {
		t.Error("operational errors must not expose cause even in debug")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := Database(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if err.Code != CodeDatabase {
		t.Errorf("expected %s, got %s", CodeDatabase, err.Code)
	}
}
