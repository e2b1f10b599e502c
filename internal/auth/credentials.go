package auth

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"tracker/internal/pkg/errs"
)

// ErrInvalidCredentials is returned on any login failure. The message
// never says whether the email or the password was wrong.
var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid email or password")

// CredentialStore keeps bcrypt password hashes keyed by login email.
// Emails are matched case-insensitively.
type CredentialStore struct {
	mu     sync.RWMutex
	hashes map[string][]byte
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{hashes: make(map[string][]byte)}
}

// Credential is a validated, hashed login secret that has not been
// installed yet. Preparing it up front lets callers fail before any other
// state is touched; installing it afterwards cannot fail.
type Credential struct {
	email string
	hash  []byte
}

// Prepare validates and hashes a password without storing anything.
func (s *CredentialStore) Prepare(email, password string) (Credential, error) {
	if email == "" {
		return Credential{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return Credential{}, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{email: strings.ToLower(email), hash: hash}, nil
}

// Put installs a prepared credential, replacing any previous one for the
// same email.
func (s *CredentialStore) Put(credential Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[credential.email] = credential.hash
}

// Register hashes and stores the password for the email, replacing any
// previous credential.
func (s *CredentialStore) Register(email, password string) error {
	credential, err := s.Prepare(email, password)
	if err != nil {
		return err
	}
	s.Put(credential)
	return nil
}

// Verify checks the password against the stored hash for the email.
func (s *CredentialStore) Verify(email, password string) error {
	s.mu.RLock()
	hash, ok := s.hashes[strings.ToLower(email)]
	s.mu.RUnlock()

	if !ok {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
