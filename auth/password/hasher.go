// Package password provides one-way password hashing and verification.
//
// The bcrypt digest embeds its own salt and cost factor, so the cost can be
// raised over time without invalidating digests created at a lower cost:
// verification reads the parameters from the digest itself.
//
// Usage:
//
//	hasher := password.NewBcryptHasher()
//	digest, err := hasher.Hash("my-password")
//	err = hasher.Verify("my-password", digest)
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the plaintext does not match the
// digest. It deliberately carries no detail about why.
var ErrMismatch = errors.New("password: invalid password")

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted digest of the plaintext. The plaintext is never
	// retained, logged, or returned.
	Hash(plaintext string) (string, error)

	// Verify checks plaintext against a digest in constant time with respect
	// to early mismatch. Returns nil on match, ErrMismatch otherwise.
	Verify(plaintext, digest string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", errors.New("password: maximum length is 72 bytes (bcrypt limit)")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		return ErrMismatch
	}
	return nil
}
