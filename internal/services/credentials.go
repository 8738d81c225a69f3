package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore checks a username and password pair
type CredentialStore interface {
	Verify(username, password string) bool
}

// StaticCredentialStore holds bcrypt hashes of a fixed set of accounts
type StaticCredentialStore struct {
	hashes map[string][]byte
	dummy  []byte
}

// NewStaticCredentialStore hashes every password in users with the given bcrypt cost
func NewStaticCredentialStore(users map[string]string, cost int) (*StaticCredentialStore, error) {
	store := &StaticCredentialStore{hashes: make(map[string][]byte, len(users))}

	for username, password := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", username, err)
		}
		store.hashes[username] = hash
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("unknown-user"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}
	store.dummy = dummy

	return store, nil
}

// Verify reports whether username exists and password matches exactly.
// Unknown usernames still run one comparison so both failures cost the same.
func (s *StaticCredentialStore) Verify(username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
