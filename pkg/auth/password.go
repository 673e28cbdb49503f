package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password is empty")

// Hash compared against when the user doesn't exist, so both login failures cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("leaguecatalog-dummy-password"), bcrypt.DefaultCost)

// HashPassword hashes one plaintext password for persistent storage.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyPassword verifies plaintext password against a bcrypt hash.
func VerifyPassword(passwordHash, candidate string) bool {
	if passwordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(candidate)) == nil
}

// BurnPasswordCheck spends the same time as a real VerifyPassword call.
func BurnPasswordCheck(candidate string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(candidate))
}
