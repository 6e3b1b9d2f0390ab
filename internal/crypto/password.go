// Package crypto implements the password hashing scheme used for stored
// credentials: a per-account random salt and a SHA-256 digest computed over
// the concatenation of password and salt.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

// saltBytes is the entropy of a generated salt. The hex encoding doubles
// the stored length.
const saltBytes = 16

// PasswordHasher produces and verifies salted password digests. All methods
// are pure functions of their inputs apart from GenerateSalt, which draws
// from the OS CSPRNG. Implementations hold no state and are safe for
// concurrent use.
type PasswordHasher interface {
	// GenerateSalt returns a fresh hex-encoded random salt.
	GenerateSalt() (string, error)

	// Hash returns the hex-encoded digest of password combined with salt.
	// The same (password, salt) pair always yields the same digest.
	Hash(password, salt string) string

	// Verify recomputes the digest for (password, salt) and compares it
	// against the stored digest in constant time.
	Verify(password, salt, digest string) bool
}

type sha256Hasher struct{}

// NewPasswordHasher constructs the SHA-256 based [PasswordHasher] used for
// all stored account credentials.
func NewPasswordHasher() PasswordHasher {
	return sha256Hasher{}
}

// GenerateSalt implements [PasswordHasher]. It reads 16 random bytes from
// the OS CSPRNG and returns them hex-encoded. Returns an error only if the
// random read fails.
func (sha256Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// Hash implements [PasswordHasher]. The digest is SHA-256 over the byte
// concatenation password ‖ salt, hex-encoded.
func (sha256Hasher) Hash(password, salt string) string {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify implements [PasswordHasher].
func (s sha256Hasher) Verify(password, salt, digest string) bool {
	computed := s.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
