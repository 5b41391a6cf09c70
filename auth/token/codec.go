package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/userd/auth"
)

// Verification failure kinds. Verify returns exactly one of these (possibly
// wrapped); callers classify with errors.Is.
var (
	// ErrMalformed covers anything that cannot be parsed or whose signature
	// does not verify, including tokens signed with a different key or
	// algorithm than configured.
	ErrMalformed = errors.New("token: malformed or signature mismatch")
	// ErrExpired indicates a well-formed token past its expiry.
	ErrExpired = errors.New("token: expired")
	// ErrIssuerMismatch indicates the "iss" claim does not match configuration.
	ErrIssuerMismatch = errors.New("token: issuer mismatch")
	// ErrAudienceMismatch indicates the "aud" claim does not match configuration.
	ErrAudienceMismatch = errors.New("token: audience mismatch")
	// ErrIncompleteClaims indicates a correctly signed token missing required
	// identity fields.
	ErrIncompleteClaims = errors.New("token: incomplete claims")
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	gojwt.RegisteredClaims
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

// Codec issues and verifies signed principal tokens. It performs no network
// or disk I/O; all operations are CPU-bound.
type Codec struct {
	cfg Config
}

// signingMethod is the single pinned algorithm. Tokens presenting any other
// "alg" header are rejected before signature verification.
var signingMethod = gojwt.SigningMethodHS256

// NewCodec creates a token codec from config.
func NewCodec(cfg *Config) (*Codec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: *cfg}, nil
}

// Issue creates a signed token for the principal. A non-positive ttl falls
// back to the configured default.
func (c *Codec) Issue(p auth.Principal, ttl time.Duration) (string, error) {
	if !p.Complete() {
		return "", ErrIncompleteClaims
	}
	if ttl <= 0 {
		ttl = c.cfg.TTL
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   p.ID,
			Issuer:    c.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{c.cfg.Audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Email: p.Email,
		Role:  p.Role,
	}
	signed, err := gojwt.NewWithClaims(signingMethod, claims).SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the embedded
// Principal. A token is valid iff its signature verifies, now < expiry, and
// issuer/audience match the configured values.
func (c *Codec) Verify(tokenString string) (auth.Principal, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		gojwt.WithValidMethods([]string{signingMethod.Alg()}),
		gojwt.WithIssuer(c.cfg.Issuer),
		gojwt.WithAudience(c.cfg.Audience),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		return auth.Principal{}, classifyParseError(err)
	}
	if !parsed.Valid {
		return auth.Principal{}, ErrMalformed
	}

	p := auth.Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}
	if !p.Complete() {
		return auth.Principal{}, ErrIncompleteClaims
	}
	return p, nil
}

// keyFunc rejects any signing method other than the pinned one before the
// signature is checked.
func (c *Codec) keyFunc(t *gojwt.Token) (interface{}, error) {
	if t.Method.Alg() != signingMethod.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return []byte(c.cfg.Secret), nil
}

// classifyParseError maps golang-jwt validation errors onto the codec's
// sentinel kinds. Expiry is checked first: an expired token is reported as
// expired even when other validation also failed.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, gojwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %v", ErrIssuerMismatch, err)
	case errors.Is(err, gojwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: %v", ErrAudienceMismatch, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
