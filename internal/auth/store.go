package auth

import (
	"fmt"
	"os"
	"strings"
)

// CredentialStore persists the raw signed token on the client side, the
// way the web clients keep it in local storage. Load refuses to hand back
// a credential it cannot trust and clears it instead.
type CredentialStore struct {
	path   string
	secret []byte
}

// NewCredentialStore creates a store backed by a file path.
func NewCredentialStore(path string, secret []byte) *CredentialStore {
	return &CredentialStore{path: path, secret: secret}
}

// Save persists a signed token.
func (s *CredentialStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("credential store: failed to save token: %w", err)
	}
	return nil
}

// Load returns the persisted token and its claims. An expired or
// unparseable token is cleared before the error is returned, so the next
// Load starts from a clean slate.
func (s *CredentialStore) Load() (string, *Claims, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", nil, fmt.Errorf("credential store: no stored token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	claims, err := ValidateToken(token, s.secret)
	if err != nil {
		s.Clear()
		return "", nil, fmt.Errorf("credential store: stored token rejected: %w", err)
	}
	return token, claims, nil
}

// Clear removes the persisted token, if any.
func (s *CredentialStore) Clear() {
	os.Remove(s.path)
}
