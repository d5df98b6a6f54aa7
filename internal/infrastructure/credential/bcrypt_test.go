package credential

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	secrets := []string{"s3cret", "correct horse battery staple", "密码123"}
	for _, secret := range secrets {
		digest, err := h.Hash(secret)
		if err != nil {
			t.Fatalf("Hash(%q): %v", secret, err)
		}
		if digest == secret {
			t.Fatalf("digest must not equal plaintext")
		}
		if !h.Verify(secret, digest) {
			t.Errorf("Verify(%q) against own digest = false", secret)
		}
		if h.Verify(secret+"x", digest) {
			t.Errorf("Verify accepted wrong secret for %q", secret)
		}
	}
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-secret")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := h.Hash("same-secret")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same secret must differ (per-call salt)")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatalf("verify failed after cost fallback")
	}
}
