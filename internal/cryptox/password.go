// Package cryptox wraps password hashing for account storage. All hashes are
// bcrypt; plaintext passwords never leave this package's call sites.
package cryptox

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the user collection was originally
// seeded with, so old and new hashes stay interchangeable.
const bcryptCost = 10

// HashPassword returns the bcrypt hash of the given plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext candidate matches the stored
// bcrypt hash.
func VerifyPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
