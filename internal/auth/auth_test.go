package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	v := NewBcryptVerifier(4)

	hash, err := v.Hash("s3cret-phrase")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-phrase" {
		t.Fatal("hash must not equal the secret")
	}
	if !v.Verify(hash, "s3cret-phrase") {
		t.Fatal("correct secret should verify")
	}
	if v.Verify(hash, "wrong") {
		t.Fatal("wrong secret must not verify")
	}
	if v.Verify("not-a-hash", "s3cret-phrase") {
		t.Fatal("garbage hash must not verify")
	}
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	v := NewBcryptVerifier(99)

	hash, err := v.Hash("pw")
	if err != nil {
		t.Fatalf("hash with clamped cost: %v", err)
	}
	if !v.Verify(hash, "pw") {
		t.Fatal("round trip failed")
	}
}
