package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Username associated with the single configured API token.
const Username = "appuser"

const bcryptCost = 10

// TokenStore holds the bcrypt hash of the one configured API token.
// The plain secret is not retained after construction.
type TokenStore struct {
	tokenHash []byte
}

// NewTokenStore hashes the configured secret and returns the store.
// An empty secret is rejected so a misconfigured deployment cannot
// accidentally accept empty tokens.
func NewTokenStore(secret string) (*TokenStore, error) {
	if secret == "" {
		return nil, errors.New("API token must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &TokenStore{tokenHash: hash}, nil
}

// Verify compares a presented token against the stored hash and returns the
// associated username. The bcrypt comparison does not leak timing information
// about the configured secret.
func (s *TokenStore) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		return "", false
	}

	return Username, true
}
