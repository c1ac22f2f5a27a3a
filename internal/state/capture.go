package state

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danieljhkim/screenkeep/internal/display"
)

// Capture snapshots the current outputs into a new Layout.
//
// Every output is recorded with the mode the compositor reports, disabled
// outputs included. Outputs that share an identity key cannot be told apart
// on restore, so Capture refuses them instead of keeping only one.
func Capture(outputs []display.Output, savedAt time.Time) (*Layout, error) {
	if collisions := display.Collisions(outputs); len(collisions) > 0 {
		keys := make([]string, 0, len(collisions))
		for key := range collisions {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s shared by %s", key, strings.Join(collisions[key], ", ")))
		}
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousIdentity, strings.Join(parts, "; "))
	}

	entries := make([]Entry, 0, len(outputs))
	for _, o := range outputs {
		entries = append(entries, Entry{
			Make:   strings.TrimSpace(o.Make),
			Model:  strings.TrimSpace(o.Model),
			Serial: strings.TrimSpace(o.Serial),
			Name:   o.Name,
			Mode:   o.Mode,
		})
	}

	return NewLayout(entries, savedAt)
}
