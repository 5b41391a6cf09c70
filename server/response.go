package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/logger"
)

// SuccessResponse is the fixed success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Meta carries pagination metadata.
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Page   int `json:"page"`
	Pages  int `json:"pages"`
}

// Responder owns the single path through which every response leaves the
// service. It classifies errors, logs them with sensitive fields redacted,
// and writes the fixed envelope. Constructed once at startup and passed by
// handle into handlers and middleware.
type Responder struct {
	log   *logger.Logger
	debug bool
}

// NewResponder creates a responder. debug opts unexpected-error detail into
// client responses and is meant for local development only.
func NewResponder(log *logger.Logger, debug bool) *Responder {
	return &Responder{log: log.WithComponent("http"), debug: debug}
}

// OK sends a 200 response wrapping data.
func (r *Responder) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// Created sends a 201 response wrapping data.
func (r *Responder) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// Message sends a 200 response with a message and optional data.
func (r *Responder) Message(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message, Data: data})
}

// Error classifies err, logs it, and writes the error envelope. The request
// is aborted so no later stage runs.
func (r *Responder) Error(c *gin.Context, err error) {
	appErr := apperrors.Classify(err)

	fields := logger.Fields(
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		logger.FieldClientIP, c.ClientIP(),
		logger.FieldStatus, appErr.HTTPStatus,
		logger.FieldErrorKind, appErr.Kind.String(),
		logger.FieldErrorCode, string(appErr.Code),
	)
	if id := c.GetHeader("X-Request-Id"); id != "" {
		fields[logger.FieldRequestID] = id
	}

	if appErr.Operational() {
		fields[logger.FieldError] = appErr.Message
		r.log.Warn("Request failed", fields)
	} else {
		// Full detail stays server-side.
		fields[logger.FieldError] = appErr.Error()
		r.log.Error("Request failed unexpectedly", fields)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse(r.debug))
}
