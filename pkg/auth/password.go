package auth

// PasswordHasher abstracts the one-way password hashing scheme (e.g., bcrypt),
// keeping the domain layer free of crypto details.
type PasswordHasher interface {
	// Hash produces a salted hash record from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether the plaintext matches the stored record.
	// A malformed record is a mismatch, not an error.
	Verify(password, record string) bool
}
