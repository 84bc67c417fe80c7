// ABOUTME: Persistence for the single bearer-credential slot
// ABOUTME: File-backed implementation storing the token under the config dir

package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore is the externally-held key-value slot for the bearer
// credential. It is read at process start, written on every successful
// acquisition, and cleared on logout or validation failure.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the credential in a single file, the same way the
// console discovers it across runs. A missing file reads as an empty slot.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load returns the persisted token, or "" when the slot is empty.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed. The file
// is operator-private.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear empties the slot. Clearing an already-empty slot is not an error.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
