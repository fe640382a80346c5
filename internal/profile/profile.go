// Package profile persists the local player: display name and best score.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is used until the player types one.
const DefaultName = "Player"

// Profile is the locally persisted player state.
type Profile struct {
	Name      string `yaml:"name"`
	HighScore int    `yaml:"high_score"`
}

// Default returns a fresh profile.
func Default() Profile {
	return Profile{Name: DefaultName}
}

// Normalize trims the name, falling back to DefaultName, and floors the score at 0.
func (p Profile) Normalize() Profile {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.HighScore < 0 {
		p.HighScore = 0
	}
	return p
}

// File stores a profile as YAML on disk.
type File struct {
	path string
}

// NewFile returns a store at path. A leading ~ expands to the home directory.
func NewFile(path string) (*File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("profile: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &File{path: path}, nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Load reads the profile. A missing file yields the default profile.
func (f *File) Load() (Profile, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("profile: read %s: %w", f.path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("profile: parse %s: %w", f.path, err)
	}
	return p.Normalize(), nil
}

// Save writes the profile atomically.
func (f *File) Save(p Profile) error {
	data, err := yaml.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("profile: encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("profile: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.yaml")
	if err != nil {
		return fmt.Errorf("profile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("profile: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("profile: write: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("profile: replace %s: %w", f.path, err)
	}
	return nil
}

// Memory keeps a profile for the lifetime of the process, e.g. one SSH session.
type Memory struct {
	mu sync.Mutex
	p  Profile
}

// NewMemory returns a store seeded with p.
func NewMemory(p Profile) *Memory {
	return &Memory{p: p.Normalize()}
}

// Load returns the stored profile.
func (m *Memory) Load() (Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p, nil
}

// Save replaces the stored profile.
func (m *Memory) Save(p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p = p.Normalize()
	return nil
}
