package validation

import "strings"

// SignupRequest is the schema for account creation.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Address   string `json:"address" validate:"required,max=500"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Phone     string `json:"phone" validate:"required,max=20,phone"`
	Password  string `json:"password" validate:"required,min=8,maxbytes=72,complexity"`
}

// Normalize trims whitespace and canonicalizes the email. The password is
// left untouched: leading/trailing spaces are significant there.
func (r *SignupRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Address = strings.TrimSpace(r.Address)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

// LoginRequest is the schema for authentication. Password rules are looser
// than signup on purpose: existing passwords predate rule changes.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// UpdateProfileRequest is the partial-update schema. Every field is
// optional, but the normalized object must carry at least one recognized
// field — an empty update is rejected rather than silently succeeding.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Address   *string `json:"address" validate:"omitempty,min=1,max=500"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20,phone"`
}

func (r *UpdateProfileRequest) Normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.FirstName)
	trim(r.LastName)
	trim(r.Address)
	trim(r.Phone)
}

// Empty reports whether no recognized field is present.
func (r *UpdateProfileRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Address == nil && r.Phone == nil
}

// Fields returns the present fields as a column→value map for the store.
func (r *UpdateProfileRequest) Fields() map[string]string {
	out := make(map[string]string)
	if r.FirstName != nil {
		out["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		out["lastName"] = *r.LastName
	}
	if r.Address != nil {
		out["address"] = *r.Address
	}
	if r.Phone != nil {
		out["phone"] = *r.Phone
	}
	return out
}

// ListQuery is the schema for the paginated admin listing.
type ListQuery struct {
	Limit  int `form:"limit" json:"limit" validate:"gte=1,lte=100"`
	Offset int `form:"offset" json:"offset" validate:"gte=0"`
}

// Normalize applies the default page size.
func (q *ListQuery) Normalize() {
	if q.Limit == 0 {
		q.Limit = 10
	}
}
