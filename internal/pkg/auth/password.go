package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost used for stored passwords
const BcryptCost = 12

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a candidate password
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// PasswordMatcher compares a stored password with a login attempt
type PasswordMatcher interface {
	Matches(stored, candidate string) bool
	// Prepare converts a seed plaintext into the stored representation
	Prepare(plain string) (string, error)
}

// NewPasswordMatcher returns the matcher for mode ("plain" or "bcrypt")
func NewPasswordMatcher(mode string) (PasswordMatcher, error) {
	switch mode {
	case "", "plain":
		return plainMatcher{}, nil
	case "bcrypt":
		return bcryptMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}

// plainMatcher is exact string equality, kept for parity with the seeded
// accounts. Do not use outside local development.
type plainMatcher struct{}

func (plainMatcher) Matches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func (plainMatcher) Prepare(plain string) (string, error) { return plain, nil }

type bcryptMatcher struct{}

func (bcryptMatcher) Matches(stored, candidate string) bool { return CheckPassword(stored, candidate) }

func (bcryptMatcher) Prepare(plain string) (string, error) { return HashPassword(plain) }
