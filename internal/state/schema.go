package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/danieljhkim/screenkeep/internal/display"
	"github.com/danieljhkim/screenkeep/internal/hash"
)

// LayoutVersion is the current on-disk format version.
const LayoutVersion = 1

var (
	// ErrCorruptLayout indicates a layout file that cannot be used: malformed
	// JSON, an unsupported version or duplicate identity keys.
	ErrCorruptLayout = errors.New("corrupt layout")

	// ErrAmbiguousIdentity indicates two connected outputs share an identity
	// key, which happens when identical displays report no serial number.
	ErrAmbiguousIdentity = errors.New("ambiguous display identity")
)

// Layout is a saved display configuration.
type Layout struct {
	// Version is the on-disk format version
	Version int `json:"version"`

	// SavedAt is when the layout was captured
	SavedAt time.Time `json:"savedAt"`

	// Fingerprint identifies the set of displays the layout was saved for
	Fingerprint string `json:"fingerprint"`

	// Entries are stored in the enumeration order seen at save time
	Entries []Entry `json:"entries"`
}

// Entry is the saved mode of one physical display.
type Entry struct {
	// Make, Model and Serial are stored as reported, for display purposes
	Make   string `json:"make"`
	Model  string `json:"model"`
	Serial string `json:"serial"`

	// Name is the port the display was connected to at save time.
	// Informational only, never used for matching.
	Name string `json:"name,omitempty"`

	Mode display.Mode `json:"mode"`
}

// Identity returns the normalized identity of the entry.
func (e Entry) Identity() display.Identity {
	return display.NewIdentity(e.Make, e.Model, e.Serial)
}

// NewLayout builds a layout from entries and computes its fingerprint.
// Entries must have unique identity keys.
func NewLayout(entries []Entry, savedAt time.Time) (*Layout, error) {
	l := &Layout{
		Version: LayoutVersion,
		SavedAt: savedAt,
		Entries: entries,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.Fingerprint = hash.Fingerprint(l.Keys())
	return l, nil
}

// Keys returns the identity keys of all entries in order.
func (l *Layout) Keys() []string {
	keys := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		keys = append(keys, e.Identity().Key())
	}
	return keys
}

// Index maps identity keys to entries.
func (l *Layout) Index() map[string]Entry {
	index := make(map[string]Entry, len(l.Entries))
	for _, e := range l.Entries {
		index[e.Identity().Key()] = e
	}
	return index
}

// Validate checks the version and identity uniqueness.
func (l *Layout) Validate() error {
	if l.Version != LayoutVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptLayout, l.Version)
	}

	seen := make(map[string]bool, len(l.Entries))
	for _, e := range l.Entries {
		key := e.Identity().Key()
		if seen[key] {
			return fmt.Errorf("%w: duplicate identity %q", ErrCorruptLayout, key)
		}
		seen[key] = true
	}
	return nil
}
