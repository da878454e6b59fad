// Package hash holds the password and reset-token hashing helpers.
package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for stored passwords.
const PasswordCost = 12

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
func ComparePassword(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	return err == nil
}

// ErrTokenSize is returned for a non-positive token size.
var ErrTokenSize = errors.New("token size must be positive")

// NewResetToken returns a random hex token of n bytes and its SHA-256 digest.
// Only the digest is stored; the plain token is sent to the user.
func NewResetToken(n int) (plain, digest string, err error) {
	if n <= 0 {
		return "", "", ErrTokenSize
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("read random: %w", err)
	}
	plain = hex.EncodeToString(buf)
	return plain, SHA256(plain), nil
}

// SHA256 returns the hex SHA-256 digest of s.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
