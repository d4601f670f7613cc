// Package cryptox wraps the password-hashing primitives used on the server.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a raw password with bcrypt at the given work cost.
// The resulting string encodes algorithm, cost and salt alongside the digest,
// so nothing else needs to be stored. The raw password itself must never be
// persisted or logged.
func HashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a raw password against a stored bcrypt hash.
// bcrypt performs the comparison in constant time; a mismatch is reported
// as bcrypt.ErrMismatchedHashAndPassword.
func CheckPassword(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
