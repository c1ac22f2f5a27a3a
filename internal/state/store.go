package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/screenkeep/internal/fsops"
	"github.com/danieljhkim/screenkeep/internal/hash"
)

const layoutExt = ".json"

// LayoutStore provides an interface for persisting saved layouts.
type LayoutStore interface {
	// Load loads the layout saved for a profile.
	// Returns os.ErrNotExist if nothing was saved yet.
	Load(profile string) (*Layout, error)

	// Save replaces the layout of a profile atomically.
	Save(profile string, layout *Layout) error

	// List returns the names of all saved profiles.
	List() ([]string, error)

	// Path returns the file backing a profile.
	Path(profile string) string
}

// FileLayoutStore implements LayoutStore using JSON files on disk.
type FileLayoutStore struct {
	fs  fsops.FS
	dir string
}

// NewFileLayoutStore creates a new FileLayoutStore rooted at dir.
func NewFileLayoutStore(fs fsops.FS, dir string) *FileLayoutStore {
	return &FileLayoutStore{
		fs:  fs,
		dir: dir,
	}
}

// Path returns the file backing a profile.
func (s *FileLayoutStore) Path(profile string) string {
	return filepath.Join(s.dir, profile+layoutExt)
}

// Load loads the layout saved for a profile.
func (s *FileLayoutStore) Load(profile string) (*Layout, error) {
	if err := s.fs.ValidateIdentifier(profile); err != nil {
		return nil, fmt.Errorf("invalid profile name: %w", err)
	}

	path := s.Path(profile)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptLayout, path, err)
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// The stored fingerprint is informational; entries are authoritative.
	layout.Fingerprint = hash.Fingerprint(layout.Keys())

	return &layout, nil
}

// Save replaces the layout of a profile atomically.
func (s *FileLayoutStore) Save(profile string, layout *Layout) error {
	if err := s.fs.ValidateIdentifier(profile); err != nil {
		return fmt.Errorf("invalid profile name: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := s.fs.AtomicWrite(s.Path(profile), data, 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}

	return nil
}

// List returns the names of all saved profiles.
func (s *FileLayoutStore) List() ([]string, error) {
	return s.fs.ListFiles(s.dir, layoutExt)
}
