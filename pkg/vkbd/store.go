package vkbd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LanguagePreferenceKey is the preference holding the active language code.
const LanguagePreferenceKey = "lang"

// PreferenceStore is a small string key-value store.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore keeps preferences for the lifetime of the process.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// FileStore persists preferences to a TOML file. The file is read once on
// open and rewritten on every Set.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFileStore loads path if it exists. A missing file is not an error.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	_, err := toml.DecodeFile(path, &s.values)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read preferences %s: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", s.path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.values); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return nil
}
