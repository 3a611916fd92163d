package password

import "testing"

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(4) // minimum cost keeps the test fast

	digest, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "p1" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Check("p1", digest) {
		t.Fatalf("correct password rejected")
	}
	if h.Check("p2", digest) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHasher_DistinctDigests(t *testing.T) {
	h := NewHasher(4)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected salted digests to differ")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	h := NewHasher(99)

	digest, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
	if !h.Check("p1", digest) {
		t.Fatalf("verify failed after cost fallback")
	}
}
