package consent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store abstracts consent record persistence for the session core.
type Store interface {
	Load() (Record, error)
	Save(Record) error
}

// FileStore persists the consent record as a small YAML document.
type FileStore struct {
	path string
}

// NewFileStore builds a store rooted at path, or at the default state
// location when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		resolved, err := ResolvePath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved on-disk location of the record.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted record. A missing file yields the zero record.
func (s *FileStore) Load() (Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("read consent record %q: %w", s.path, err)
	}

	var rec Record
	if err := yaml.Unmarshal(content, &rec); err != nil {
		return Record{}, fmt.Errorf("parse consent record %q: %w", s.path, err)
	}
	return rec, nil
}

// Save writes the record, creating the parent directory when needed.
func (s *FileStore) Save(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create consent record dir: %w", err)
	}

	content, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode consent record: %w", err)
	}

	if err := os.WriteFile(s.path, content, 0o600); err != nil {
		return fmt.Errorf("write consent record %q: %w", s.path, err)
	}
	return nil
}

// ResolvePath selects XDG_STATE_HOME when available, otherwise ~/.local/state.
func ResolvePath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); xdg != "" {
		return filepath.Join(xdg, "voiceime", "consent.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("unable to resolve user home for consent record fallback")
	}
	return filepath.Join(home, ".local", "state", "voiceime", "consent.yaml"), nil
}
