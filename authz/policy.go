package authz

import (
	"context"

	"github.com/skillsenselab/userd/auth"
	"github.com/skillsenselab/userd/auth/authctx"
	"github.com/skillsenselab/userd/errors"
)

// Policy is the core authorization interface. Authorize returns nil to allow
// or a classified *errors.AppError to deny.
type Policy interface {
	Authorize(p auth.Principal) error
}

// PolicyFunc is an adapter to use ordinary functions as Policy.
type PolicyFunc func(p auth.Principal) error

// Authorize implements Policy.
func (f PolicyFunc) Authorize(p auth.Principal) error { return f(p) }

// RoleIn allows principals whose role is in the given set.
func RoleIn(roles ...auth.Role) Policy {
	set := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return PolicyFunc(func(p auth.Principal) error {
		if _, ok := set[p.Role]; ok {
			return nil
		}
		return errors.Authorization("Insufficient role.")
	})
}

// OwnerOrRole allows the principal that owns the resource, or any principal
// holding the given role. Ownership is identity equality on the resource id.
func OwnerOrRole(resourceID string, role auth.Role) Policy {
	return PolicyFunc(func(p auth.Principal) error {
		if p.ID != "" && p.ID == resourceID {
			return nil
		}
		if p.Role == role {
			return nil
		}
		return errors.Authorization("")
	})
}

// Check evaluates a policy against the principal attached to the context.
// A missing principal denies with an authorization error rather than
// panicking: the policy was invoked without prior authentication.
func Check(ctx context.Context, policy Policy) error {
	p, err := authctx.GetOrError(ctx)
	if err != nil {
		return errors.Authorization("Authentication required before authorization.")
	}
	return policy.Authorize(p)
}
