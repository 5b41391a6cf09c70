package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/logger"
)

// Recovery returns middleware that turns panics into classified 500s. The
// stack is logged server-side; the client sees only the generic envelope.
func Recovery(respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered", logger.Fields(
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					logger.FieldClientIP, c.ClientIP(),
				))
				respond(c, apperrors.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
