package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"spana-admin/models"
)

// StorageName is the fixed name of the persisted session entry.
const StorageName = "auth-storage.json"

// persistedState is the durable subset of the session. Transient fields
// (isLoading, error) are never written.
type persistedState struct {
	Token           string           `json:"token,omitempty"`
	User            *models.AuthUser `json:"user,omitempty"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	PendingEmail    string           `json:"pendingEmail,omitempty"`
}

// fileStorage keeps the session entry as a single JSON file.
type fileStorage struct {
	fs   afero.Fs
	path string
}

func newFileStorage(fs afero.Fs, path string) *fileStorage {
	return &fileStorage{fs: fs, path: path}
}

// load reads the persisted entry. A missing file is not an error; it just
// means no session was saved.
func (s *fileStorage) load() (*persistedState, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *fileStorage) save(state persistedState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.fs, s.path, data, 0o600)
}

func (s *fileStorage) clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
