package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/screenkeep/internal/hash"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// Save captures the connected outputs and replaces the profile's layout.
//
// Every output is saved, including disabled ones and heads behind a closed
// lid. Outputs sharing an identity key abort the save. With Auto the
// profile is named after the layout fingerprint, so each set of displays
// keeps its own layout.
func (e *Engine) Save(ctx context.Context, req *SaveRequest) (*SaveResult, error) {
	profile := profileOrDefault(req.Profile)

	outputs, err := e.backend.Enumerate(ctx)
	if err != nil {
		return nil, wrap(ErrEnumeration, err)
	}
	e.logger.Debug("enumerated outputs", "backend", e.backend.Name(), "count", len(outputs))

	layout, err := state.Capture(outputs, e.clock.Now())
	if err != nil {
		return nil, err
	}

	if req.Auto {
		profile = hash.Short(layout.Fingerprint)
	}

	result := &SaveResult{
		Profile: profile,
		Path:    e.store.Path(profile),
		Layout:  layout,
		DryRun:  req.DryRun,
	}

	for _, entry := range layout.Entries {
		if entry.Identity().IsFallback() {
			e.logger.Warn("display reports no serial, matching by make and model only",
				"head", entry.Name, "key", entry.Identity().Key())
			result.Fallback = append(result.Fallback, entry.Name)
		}
	}

	if req.DryRun {
		return result, nil
	}

	if err := e.store.Save(profile, layout); err != nil {
		return nil, fmt.Errorf("failed to save layout %q: %w", profile, err)
	}
	e.logger.Info("saved layout", "profile", profile, "entries", len(layout.Entries), "path", result.Path)

	return result, nil
}
