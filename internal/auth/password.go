package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
)

// SaltLength is the number of random bytes generated per user. The salt
// doubles as the HMAC key, so it matches the SHA-512 block size.
const SaltLength = 128

// NewSalt returns a fresh random salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword computes HMAC-SHA512 over the UTF-8 password bytes, keyed
// with the user's salt.
func HashPassword(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// VerifyPassword recomputes the salted hash and compares it against the
// stored one in constant time.
func VerifyPassword(password string, salt, hash []byte) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}
