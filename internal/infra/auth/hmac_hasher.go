package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"userreg/internal/domain/service"
	"userreg/internal/errors"
)

const (
	// saltSize matches the recommended HMAC-SHA-512 key size (the hash block size).
	saltSize = sha512.BlockSize
	// maxStoredSize is the column width for both hash and salt.
	maxStoredSize = 500
)

// hmacHasher implements service.CredentialHasher with HMAC-SHA-512 keyed by a random per-account salt.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
func NewHMACHasher() service.CredentialHasher {
	return &hmacHasher{}
}

// Hash generates a fresh salt and returns HMAC-SHA-512(salt, password).
func (h *hmacHasher) Hash(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate salt")
	}

	return computeHMAC(password, salt), salt, nil
}

// Verify recomputes the keyed hash and compares it in constant time.
// Empty, truncated or oversized inputs never match.
func (h *hmacHasher) Verify(password string, hash, salt []byte) bool {
	if len(hash) != sha512.Size || len(salt) == 0 || len(salt) > maxStoredSize {
		return false
	}

	return hmac.Equal(computeHMAC(password, salt), hash)
}

func computeHMAC(password string, key []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
