// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher turns passwords into salted keyed hashes and verifies them.
// It applies no strength policy; callers validate passwords first.
type CredentialHasher interface {
	// Hash generates a fresh random salt and returns the keyed hash of password under it.
	Hash(password string) (hash, salt []byte, err error)

	// Verify reports whether password hashes to hash under salt.
	Verify(password string, hash, salt []byte) bool
}
