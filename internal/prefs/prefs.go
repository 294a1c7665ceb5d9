// Package prefs handles floorboard user preferences persistence.
// Preferences are stored as a flat TOML table in ~/.config/floorboard/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Store is a string key/value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

const defaultPrefsPath = "~/.config/floorboard/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// File is a Store persisted to a TOML file. Every Set rewrites the file.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

var _ Store = (*File)(nil)

// Open loads the preferences file at path. An empty path uses DefaultPath.
// Missing or unreadable files yield an empty store; persistence is best-effort.
func Open(path string) *File {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	f := &File{path: path, values: map[string]string{}}

	resolved, err := expandPath(path)
	if err != nil {
		return f
	}
	file, err := os.Open(resolved)
	if err != nil {
		return f
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return f
	}

	var raw map[string]any
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return f // Graceful degradation
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			f.values[k] = s
		}
	}
	return f
}

// Path returns the unexpanded path the store writes to.
func (f *File) Path() string {
	return f.path
}

// Get returns the stored value for key.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set stores value under key and writes the file, creating directories as
// needed. The in-memory value is kept even when the write fails.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	f.values[key] = value
	snapshot := maps.Clone(f.values)
	f.mu.Unlock()

	return save(f.path, snapshot)
}

func save(path string, values map[string]string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Memory is a Store that never touches disk. SetErr, when non-nil, is
// returned from every Set after the value has been recorded.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	SetErr error
}

var _ Store = (*Memory)(nil)

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return m.SetErr
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
