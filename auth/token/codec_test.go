package token

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/userd/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(&Config{Secret: testSecret})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func testPrincipal() auth.Principal {
	return auth.Principal{ID: "u-1", Email: "alice@example.com", Role: auth.RoleUser}
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	if _, err := NewCodec(&Config{}); err == nil {
		t.Error("expected error for missing secret")
	}
	if _, err := NewCodec(&Config{Secret: "short"}); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)
	p := testPrincipal()

	signed, err := c.Issue(p, time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != p {
		t.Errorf("round-trip principal mismatch: got %+v, want %+v", got, p)
	}
}

func TestCodec_IssueRejectsIncompletePrincipal(t *testing.T) {
	c := newTestCodec(t)
	if _, err := c.Issue(auth.Principal{ID: "u-1"}, time.Hour); !errors.Is(err, ErrIncompleteClaims) {
		t.Errorf("expected ErrIncompleteClaims, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	c := newTestCodec(t)
	signed, err := c.Issue(testPrincipal(), time.Millisecond)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_ValidUntilExpiry(t *testing.T) {
	c := newTestCodec(t)
	signed, err := c.Issue(testPrincipal(), 2*time.Second)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := c.Verify(signed); err != nil {
		t.Errorf("token should verify before expiry: %v", err)
	}
}

func TestCodec_WrongKeyIsMalformed(t *testing.T) {
	c := newTestCodec(t)
	other, err := NewCodec(&Config{Secret: "ffffffffffffffffffffffffffffffff"})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	signed, err := other.Issue(testPrincipal(), time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := c.Verify(signed); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for foreign key, got %v", err)
	}
}

func TestCodec_GarbageIsMalformed(t *testing.T) {
	c := newTestCodec(t)
	for _, input := range []string{"", "abc", "aa.bb.cc"} {
		if _, err := c.Verify(input); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q): expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestCodec_RejectsOtherAlgorithm(t *testing.T) {
	c := newTestCodec(t)
	// Sign with HS512 and the right secret: still rejected, algorithm is pinned.
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    c.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{c.cfg.Audience},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "alice@example.com",
		Role:  auth.RoleUser,
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Verify(signed); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for HS512 token, got %v", err)
	}
}

func TestCodec_IssuerAndAudienceMismatch(t *testing.T) {
	c := newTestCodec(t)

	foreignIssuer, err := NewCodec(&Config{Secret: testSecret, Issuer: "someone-else", Audience: c.cfg.Audience})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	signed, _ := foreignIssuer.Issue(testPrincipal(), time.Hour)
	if _, err := c.Verify(signed); !errors.Is(err, ErrIssuerMismatch) {
		t.Errorf("expected ErrIssuerMismatch, got %v", err)
	}

	foreignAudience, err := NewCodec(&Config{Secret: testSecret, Issuer: c.cfg.Issuer, Audience: "other-api"})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	signed, _ = foreignAudience.Issue(testPrincipal(), time.Hour)
	if _, err := c.Verify(signed); !errors.Is(err, ErrAudienceMismatch) {
		t.Errorf("expected ErrAudienceMismatch, got %v", err)
	}
}

func TestCodec_IncompleteClaims(t *testing.T) {
	c := newTestCodec(t)
	// Correctly signed but missing email/role.
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    c.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{c.cfg.Audience},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := gojwt.NewWithClaims(signingMethod, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Verify(signed); !errors.Is(err, ErrIncompleteClaims) {
		t.Errorf("expected ErrIncompleteClaims, got %v", err)
	}
}
