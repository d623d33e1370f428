package interfaces

// PasswordHasher abstracts the one-way password transform so the rest of the
// service never depends on a specific hashing algorithm.
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext. Two calls with the same
	// plaintext need not produce equal digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext is the input that produced digest.
	// A malformed digest yields false, never an error.
	Verify(plaintext, digest string) bool
}
