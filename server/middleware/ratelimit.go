package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/ratelimit"
	"github.com/skillsenselab/userd/validation"
)

// RateLimitConfig configures the rate limiting stage.
type RateLimitConfig struct {
	// Limiter is the shared per-key limiter. Required.
	Limiter *ratelimit.Limiter
	// KeyFunc extracts the rate limit key from a request. Defaults to client IP.
	KeyFunc func(*gin.Context) string
	// FailuresOnly makes successful requests not count against the budget:
	// the stage reserves provisionally and releases after the downstream
	// handler responds with a non-error status. Use for login-style routes
	// where rapid legitimate requests must not self-throttle.
	FailuresOnly bool
	// Respond writes the classified 429. Required.
	Respond ErrorWriter
}

// RateLimit returns the rate limiting stage.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = IPBasedKey
	}
	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)

		if !cfg.FailuresOnly {
			if res := cfg.Limiter.Check(key); !res.Allowed {
				deny(c, cfg.Respond, res)
				return
			}
			c.Next()
			return
		}

		res, reservation := cfg.Limiter.Reserve(key)
		if !res.Allowed {
			deny(c, cfg.Respond, res)
			return
		}
		c.Next()

		// Only failed attempts consume budget. A cancelled request also
		// releases: an abandoned stage must not leak its reservation.
		if c.Writer.Status() < http.StatusBadRequest || c.Request.Context().Err() != nil {
			reservation.Release()
		}
	}
}

func deny(c *gin.Context, respond ErrorWriter, res ratelimit.Result) {
	if res.RetryAfter > 0 {
		c.Header("Retry-After", fmt.Sprintf("%d", int(res.RetryAfter.Seconds()+0.5)))
	}
	respond(c, apperrors.RateLimited(res.RetryAfter))
}

// IPBasedKey extracts the client IP for use as a rate limit key.
func IPBasedKey(c *gin.Context) string {
	return c.ClientIP()
}

// LoginKey composes the client IP with the attempted login email so one
// address cannot burn the budget of every account, nor one account be locked
// out from everywhere. Requires the validation stage to have run first; the
// key degrades to the bare IP when no login body is present.
func LoginKey(c *gin.Context) string {
	if req, ok := BodyOK[validation.LoginRequest](c); ok {
		return c.ClientIP() + "|" + req.Email
	}
	return c.ClientIP()
}
