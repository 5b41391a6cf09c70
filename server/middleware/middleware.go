// Package middleware contains the request pipeline stages: validation, rate
// limiting, authentication, and the ambient middleware (recovery, request
// id, logging, CORS, body size, telemetry).
//
// Stages are composed as an explicit ordered gin chain per route; each stage
// either calls c.Next() or writes exactly one classified error through the
// provided ErrorWriter and aborts, so the first failure short-circuits the
// rest of the pipeline.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// ErrorWriter writes a classified error response and aborts the request.
// Wired to (*server.Responder).Error so every failure leaves through the
// same classify-log-respond path.
type ErrorWriter func(c *gin.Context, err error)
