// Package persist rewrites the document to a plain-text file on every change
// and detects external edits by modification time. It is the persistence
// collaborator a host wires to session change events; the editing core never
// touches the filesystem.
package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFileName is the scratchpad file under the user's home directory.
const DefaultFileName = ".scrawl.txt"

// DefaultPath returns the default scratchpad path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Store persists one document at a fixed path. There is no locking; when
// several writers share the path, the last one wins. Not safe for concurrent
// use.
type Store struct {
	path string
	mod  time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the file, normalizes line endings, and records the file's
// modification time. ok is false when the file does not exist yet.
func (s *Store) Load() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", s.path, err)
	}
	s.recordModTime()
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return text, true, nil
}

// Save rewrites the whole file and records the new modification time.
func (s *Store) Save(text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.recordModTime()
	return nil
}

// ReloadIfChanged rereads the file when its modification time moved past the
// one recorded by the last Load or Save. ok is true only when new content
// was read; a missing file is not an error.
func (s *Store) ReloadIfChanged() (string, bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", s.path, err)
	}
	if !info.ModTime().After(s.mod) {
		return "", false, nil
	}
	return s.Load()
}

func (s *Store) recordModTime() {
	if info, err := os.Stat(s.path); err == nil {
		s.mod = info.ModTime()
	}
}
