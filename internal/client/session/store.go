package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// TokenStore persists the session token between CLI runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type fileToken struct {
	Token string `json:"token"`
}

// FileStore keeps the token in a small JSON file with owner-only permissions.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored token. A missing file means no stored session and
// is not an error.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var t fileToken
	if err := json.Unmarshal(data, &t); err != nil {
		return "", err
	}
	return t.Token, nil
}

func (s *FileStore) Save(token string) error {
	data, err := json.Marshal(fileToken{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
