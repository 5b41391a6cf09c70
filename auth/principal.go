package auth

// Role is the access level carried by a principal.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is the authenticated identity attached to a request after token
// verification. It is immutable and request-scoped; nothing in this core
// persists it.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Complete reports whether every required identity field is present.
// A correctly signed token with missing fields is still rejected.
func (p Principal) Complete() bool {
	return p.ID != "" && p.Email != "" && p.Role.Valid()
}
