package engine

import (
	"context"
	"errors"

	"github.com/danieljhkim/screenkeep/internal/display"
	"github.com/danieljhkim/screenkeep/internal/hash"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// Info reports the connected heads, their identity keys and how they relate
// to the saved layout of a profile. A missing layout is not an error.
func (e *Engine) Info(ctx context.Context, req *InfoRequest) (*InfoResult, error) {
	profile := profileOrDefault(req.Profile)

	outputs, err := e.backend.Enumerate(ctx)
	if err != nil {
		return nil, wrap(ErrEnumeration, err)
	}

	excluded, warnings := e.lids.ExcludedHeads(e.options.LidRules)

	var layout *state.Layout
	layout, err = e.loadLayout(profile)
	if err != nil && !errors.Is(err, ErrNoSavedLayout) {
		return nil, err
	}

	result := &InfoResult{
		Backend:   e.backend.Name(),
		Profile:   profile,
		StorePath: e.store.Path(profile),
		Heads:     make([]HeadInfo, 0, len(outputs)),
	}

	saved := map[string]state.Entry{}
	if layout != nil {
		saved = layout.Index()
		result.SavedFingerprint = layout.Fingerprint
		savedAt := layout.SavedAt
		result.SavedAt = &savedAt
	}

	for _, o := range outputs {
		id := display.Resolve(o)
		_, isSaved := saved[id.Key()]

		result.Heads = append(result.Heads, HeadInfo{
			Name:      o.Name,
			Make:      o.Make,
			Model:     o.Model,
			Serial:    o.Serial,
			Key:       id.Key(),
			Fallback:  id.IsFallback(),
			Mode:      o.Mode,
			LidClosed: excluded.Contains(o.Name),
			Saved:     isSaved,
		})
	}
	result.Fingerprint = connectedFingerprint(outputs)

	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	return result, nil
}

// connectedFingerprint fingerprints the identity keys of outputs the same
// way state.NewLayout does for saved entries.
func connectedFingerprint(outputs []display.Output) string {
	keys := make([]string, 0, len(outputs))
	for _, o := range outputs {
		keys = append(keys, display.Resolve(o).Key())
	}
	return hash.Fingerprint(keys)
}

// ListProfiles returns the saved layout profiles.
func (e *Engine) ListProfiles(ctx context.Context) (*ProfilesResult, error) {
	profiles, err := e.store.List()
	if err != nil {
		return nil, err
	}
	return &ProfilesResult{Profiles: profiles}, nil
}
