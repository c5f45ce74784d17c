package ports

// PasswordHasher produces and checks one-way salted password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash is
	// never an error, just a mismatch.
	Verify(plaintext, hash string) bool
}
