// Package store defines the user persistence contract consumed by the
// access-control core, plus an in-memory implementation used for tests and
// default wiring. External stores (Postgres, etc.) implement the same
// interface; the core never sees driver errors, only the sentinels below.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/skillsenselab/userd/auth"
)

// Sentinel errors. Implementations must return these (possibly wrapped) so
// the error classifier can map uniqueness violations to Conflict and missing
// rows to NotFound without inspecting driver errors.
var (
	ErrNotFound       = errors.New("store: user not found")
	ErrDuplicateEmail = errors.New("store: email already exists")
)

// User is the persisted account record.
type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PasswordDigest string    `json:"-"`
	Role           auth.Role `json:"role"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Principal derives the request-scoped identity from the stored record.
func (u *User) Principal() auth.Principal {
	return auth.Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}

// UserStore is the persistence contract.
type UserStore interface {
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// Insert stores a new user and returns its assigned id. Returns
	// ErrDuplicateEmail if the email is already taken.
	Insert(ctx context.Context, u *User) (string, error)

	// UpdateFields applies a partial update and returns the updated record,
	// or ErrNotFound.
	UpdateFields(ctx context.Context, id string, fields map[string]string) (*User, error)

	// Delete removes the user and returns the deleted record, or ErrNotFound.
	Delete(ctx context.Context, id string) (*User, error)

	// ToggleStatus flips the active flag and returns the updated record, or
	// ErrNotFound.
	ToggleStatus(ctx context.Context, id string) (*User, error)

	// List returns a page of users ordered by creation time (newest first)
	// and the total count.
	List(ctx context.Context, limit, offset int) ([]User, int, error)
}
