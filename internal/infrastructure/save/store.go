// Package save persists player progress as a TOML file.
package save

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/younwookim/screenflow/internal/domain/progress"
)

// file is the on-disk layout
type file struct {
	Version  int               `toml:"version"`
	Progress progress.Progress `toml:"progress"`
}

const version = 1

// Store reads and writes one save file
type Store struct {
	path    string
	catalog progress.Catalog
}

// NewStore creates a store for path. Loaded progress is fitted to catalog.
func NewStore(path string, catalog progress.Catalog) *Store {
	return &Store{path: path, catalog: catalog}
}

// Path returns the save file location
func (s *Store) Path() string { return s.path }

// Load reads the save file. A missing file yields fresh progress.
func (s *Store) Load() (*progress.Progress, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return progress.New(s.catalog), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if f.Version > version {
		return nil, fmt.Errorf("failed to parse %s: unsupported version %d", s.path, f.Version)
	}

	p := f.Progress
	p.Normalize(s.catalog)
	return &p, nil
}

// Save writes p atomically: a temporary file in the same directory is
// renamed over the save file.
func (s *Store) Save(p *progress.Progress) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file{Version: version, Progress: *p}); err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
