// Package authctx propagates the authenticated Principal through a request's
// context. The Principal is stored once by the authentication stage and read
// by authorization and handlers; it is never mutated in place.
package authctx

import (
	"context"
	"errors"

	"github.com/skillsenselab/userd/auth"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// ErrNoPrincipal is returned when no principal is attached to the context.
var ErrNoPrincipal = errors.New("authctx: no principal in context")

// Set stores the principal in the context.
func Set(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Get retrieves the principal from the context.
func Get(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}

// GetOrError retrieves the principal, returning ErrNoPrincipal if absent.
func GetOrError(ctx context.Context) (auth.Principal, error) {
	p, ok := Get(ctx)
	if !ok {
		return auth.Principal{}, ErrNoPrincipal
	}
	return p, nil
}
