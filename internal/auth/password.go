package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt digest of the plaintext. bcrypt
// generates a fresh salt per call, so hashing the same password twice
// yields different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
// Malformed digests simply fail verification; the comparison itself is
// constant-time inside bcrypt.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
