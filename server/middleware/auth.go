package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/userd/auth/authctx"
	"github.com/skillsenselab/userd/auth/token"
	apperrors "github.com/skillsenselab/userd/errors"
)

const bearerScheme = "Bearer"

// RequireAuth returns the mandatory authentication stage. A missing or
// malformed Authorization header, or a token the codec rejects, aborts with
// a 401. On success the Principal is attached to the request context for
// downstream stages.
func RequireAuth(codec *token.Codec, respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c)
		if err != nil {
			respond(c, err)
			return
		}
		authenticate(c, codec, respond, raw)
	}
}

// OptionalAuth returns the optional authentication stage: absence of a
// credential is not an error and the request continues without a Principal.
// A credential that is present but invalid is still rejected — silently
// ignoring it would mask tampering attempts.
func OptionalAuth(codec *token.Codec, respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		raw, err := bearerToken(c)
		if err != nil {
			respond(c, err)
			return
		}
		authenticate(c, codec, respond, raw)
	}
}

// bearerToken extracts the raw token from the Authorization header. Absence
// and a malformed scheme are the same failure kind.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperrors.Authentication("Missing authentication credential.")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return "", apperrors.Authentication("Invalid authorization header format.")
	}
	return parts[1], nil
}

func authenticate(c *gin.Context, codec *token.Codec, respond ErrorWriter, raw string) {
	principal, err := codec.Verify(raw)
	if err != nil {
		respond(c, mapTokenError(err))
		return
	}
	ctx := authctx.Set(c.Request.Context(), principal)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// mapTokenError collapses codec failures into the two client-visible cases.
// The client learns "expired" vs "invalid" and nothing more; disclosing the
// precise reason (bad issuer, bad signature, missing claims) would hand an
// attacker an oracle.
func mapTokenError(err error) error {
	if errors.Is(err, token.ErrExpired) {
		return apperrors.TokenExpired()
	}
	return apperrors.InvalidToken()
}
