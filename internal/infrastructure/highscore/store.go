// Package highscore persists the best score between sessions.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Key is the entry the score is stored under.
const Key = "pevious_high_score"

// Store is a small JSON key-value file. The zero value is not usable; use
// Open or OpenDefault.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]int
}

// DefaultPath returns the store location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "pevious", "highscore.json"), nil
}

// OpenDefault opens the store at DefaultPath.
func OpenDefault() (*Store, error) {
	p, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(p)
}

// Open reads the store at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]int)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read high score: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse high score: %w", err)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored high score, or 0.
func (s *Store) Get() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[Key]
}

// Set records score if it beats the stored value and writes the file.
// It reports whether the score was recorded.
func (s *Store) Set(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.values[Key] {
		return false, nil
	}
	s.values[Key] = score
	if err := s.save(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode high score: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create high score dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace high score: %w", err)
	}
	return nil
}
