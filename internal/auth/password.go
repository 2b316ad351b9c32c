package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// PasswordHasher wraps bcrypt so callers never touch digests directly.
// bcrypt salts every call, so two hashes of the same password differ and
// digest equality must never be used in place of Verify.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison runs in
// constant time inside bcrypt; a malformed digest yields false, never an
// error for the caller to handle.
func (h *PasswordHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
