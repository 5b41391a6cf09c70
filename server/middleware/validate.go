package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/validation"
)

const validatedBodyKey = "validated_body"
const validatedQueryKey = "validated_query"

// ValidateBody returns the validation stage for a JSON body schema T. The
// body is parsed, normalized, and validated in full; the normalized value is
// stored for the handler via Body[T]. Every violated field is reported in
// one response.
func ValidateBody[T any](respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindJSON(req); err != nil {
			respond(c, apperrors.Validation([]apperrors.FieldViolation{
				{Field: "body", Reason: "must be a valid JSON object"},
			}))
			return
		}
		if err := validation.Struct(req); err != nil {
			respond(c, err)
			return
		}
		c.Set(validatedBodyKey, req)
		c.Next()
	}
}

// ValidateQuery returns the validation stage for query parameters bound to
// schema T, stored for the handler via Query[T].
func ValidateQuery[T any](respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindQuery(req); err != nil {
			respond(c, apperrors.Validation([]apperrors.FieldViolation{
				{Field: "query", Reason: "contains malformed parameters"},
			}))
			return
		}
		if err := validation.Struct(req); err != nil {
			respond(c, err)
			return
		}
		c.Set(validatedQueryKey, req)
		c.Next()
	}
}

// Body returns the normalized body stored by ValidateBody[T]. Panics if the
// validation stage did not run — that is a route wiring bug, not a runtime
// condition.
func Body[T any](c *gin.Context) *T {
	return c.MustGet(validatedBodyKey).(*T)
}

// BodyOK is the non-panicking variant of Body.
func BodyOK[T any](c *gin.Context) (*T, bool) {
	v, exists := c.Get(validatedBodyKey)
	if !exists {
		return nil, false
	}
	req, ok := v.(*T)
	return req, ok
}

// Query returns the normalized query stored by ValidateQuery[T].
func Query[T any](c *gin.Context) *T {
	return c.MustGet(validatedQueryKey).(*T)
}
