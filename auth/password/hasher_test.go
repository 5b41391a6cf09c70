package password

import (
	"errors"
	"strings"
	"testing"
)

// Low cost keeps the tests fast; correctness is independent of cost.
func fastHasher() *BcryptHasher {
	return NewBcryptHasher(WithCost(4))
}

func TestHasher_RoundTrip(t *testing.T) {
	h := fastHasher()
	digest, err := h.Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "Sup3rSecret" {
		t.Fatal("digest must not equal plaintext")
	}
	if err := h.Verify("Sup3rSecret", digest); err != nil {
		t.Errorf("Verify with correct plaintext: %v", err)
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := fastHasher()
	digest, err := h.Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Verify("sup3rsecret", digest); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	h := fastHasher()
	a, _ := h.Hash("Sup3rSecret")
	b, _ := h.Hash("Sup3rSecret")
	if a == b {
		t.Error("two digests of the same plaintext should differ (random salt)")
	}
}

func TestHasher_CostChangeKeepsOldDigestsValid(t *testing.T) {
	old := NewBcryptHasher(WithCost(4))
	digest, err := old.Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	// A hasher tuned to a higher cost still verifies digests created at the
	// old cost: the cost is read from the digest.
	upgraded := NewBcryptHasher(WithCost(6))
	if err := upgraded.Verify("Sup3rSecret", digest); err != nil {
		t.Errorf("upgraded hasher should verify old digest: %v", err)
	}
}

func TestHasher_RejectsOverlongPassword(t *testing.T) {
	h := fastHasher()
	if _, err := h.Hash(strings.Repeat("a", 73)); err == nil {
		t.Error("expected error for password over 72 bytes")
	}
}

func TestWithCost_IgnoresOutOfRange(t *testing.T) {
	h := NewBcryptHasher(WithCost(99))
	if h.cost != 12 {
		t.Errorf("out-of-range cost should keep default, got %d", h.cost)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{BcryptCost: 2}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cost below minimum")
	}
	cfg = Config{BcryptCost: 10}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
