package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "p1" || hash == "" {
		t.Fatalf("expected hashed output, got %q", hash)
	}

	if !h.Verify("p1", hash) {
		t.Fatalf("expected original password to verify")
	}
	if h.Verify("p2", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestBcryptHasher_SaltEmbedded(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("p1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if h.Verify("p1", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(99)
	if h.cost != DefaultBcryptCost {
		t.Fatalf("expected cost fallback to %d, got %d", DefaultBcryptCost, h.cost)
	}

	hash, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected work factor 10 prefix, got %q", hash)
	}
}
