// Package auth provides pluggable credential verification for the user
// directory. The login contract stays hash-and-compare regardless of the
// implementation behind it.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier hashes secrets at account creation and checks them at login.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) bool
}

// BcryptVerifier implements Verifier with bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier constructs a BcryptVerifier. Costs outside bcrypt's
// valid range fall back to the default cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns the bcrypt hash of the secret.
func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the secret matches the stored hash.
func (v *BcryptVerifier) Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
