package user

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/userd/auth"
	"github.com/skillsenselab/userd/auth/token"
	"github.com/skillsenselab/userd/ratelimit"
	"github.com/skillsenselab/userd/server"
	"github.com/skillsenselab/userd/server/middleware"
	"github.com/skillsenselab/userd/validation"
)

// Routes wires the account API under /api/users. Every endpoint declares its
// full stage order explicitly: validation, then rate limiting, then
// authentication, then authorization, then the handler. No stage is implied.
type Routes struct {
	Handler      *Handler
	Codec        *token.Codec
	LoginLimiter *ratelimit.Limiter
	Responder    *server.Responder
}

// Register mounts the account routes on the engine.
func (r *Routes) Register(engine *gin.Engine) {
	respond := middleware.ErrorWriter(r.Responder.Error)

	users := engine.Group("/api/users")

	users.POST("/signup",
		middleware.ValidateBody[validation.SignupRequest](respond),
		r.Handler.Signup,
	)

	// Validation runs before rate limiting so the limiter can key on the
	// normalized email, and so malformed bodies never consume login budget.
	users.POST("/login",
		middleware.ValidateBody[validation.LoginRequest](respond),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:      r.LoginLimiter,
			KeyFunc:      middleware.LoginKey,
			FailuresOnly: true,
			Respond:      respond,
		}),
		r.Handler.Login,
	)

	users.GET("/me",
		middleware.RequireAuth(r.Codec, respond),
		r.Handler.Me,
	)

	users.PUT("/me",
		middleware.RequireAuth(r.Codec, respond),
		middleware.ValidateBody[validation.UpdateProfileRequest](respond),
		r.Handler.UpdateMe,
	)

	users.GET("",
		middleware.RequireAuth(r.Codec, respond),
		middleware.RequireRole(respond, auth.RoleAdmin),
		middleware.ValidateQuery[validation.ListQuery](respond),
		r.Handler.List,
	)

	// Account deletion is open to the account owner as well as admins.
	users.DELETE("/:id",
		middleware.RequireAuth(r.Codec, respond),
		middleware.RequireOwnerOrRole("id", auth.RoleAdmin, respond),
		r.Handler.Delete,
	)

	users.PATCH("/:id/toggle-status",
		middleware.RequireAuth(r.Codec, respond),
		middleware.RequireRole(respond, auth.RoleAdmin),
		r.Handler.ToggleStatus,
	)
}
