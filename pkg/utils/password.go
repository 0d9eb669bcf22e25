package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost setara dengan genSalt(10)
const DefaultBcryptCost = 10

// HashPassword generates bcrypt hash from plaintext password.
// The result embeds salt and cost, so verification needs nothing else.
func HashPassword(password string) (string, error) {
	return HashPasswordCost(password, DefaultBcryptCost)
}

// HashPasswordCost hashes with an explicit cost factor
func HashPasswordCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		// engine failure, not a wrong password
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(bytes), nil
}

// CheckPasswordHash compares plaintext against a stored bcrypt hash.
// A mismatch is a boolean false, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
