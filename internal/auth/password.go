// Package auth implements password hashing and bearer-token issuance for the
// application. It is the only place that touches bcrypt or JWT signing keys.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of the plaintext password.
// The salt is randomized per call, so hashing the same password twice
// produces different digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the digest.
// A malformed digest is treated the same as a mismatch; bcrypt performs the
// comparison in constant time.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
