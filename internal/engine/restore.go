package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/screenkeep/internal/compositor"
	"github.com/danieljhkim/screenkeep/internal/display"
	"github.com/danieljhkim/screenkeep/internal/planner"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// Restore applies the saved layout of a profile to the connected outputs.
//
// Without a profile the layout saved for the connected set of displays is
// used (see matchProfile), falling back to DefaultProfile.
//
// Fatal problems (unreadable layout, enumeration failure) abort before any
// output is touched. Each apply action is then attempted independently: a
// rejected output is recorded in Failed and the remaining actions still run.
// The returned error wraps ErrApplyFailed when anything failed; the result
// is returned in that case too.
func (e *Engine) Restore(ctx context.Context, req *RestoreRequest) (*RestoreResult, error) {
	excluded, warnings := e.lids.ExcludedHeads(e.options.LidRules)

	var (
		profile = req.Profile
		layout  *state.Layout
		err     error
	)
	if profile != "" {
		if layout, err = e.loadLayout(profile); err != nil {
			return nil, err
		}
	}

	outputs, err := e.backend.Enumerate(ctx)
	if err != nil {
		return nil, wrap(ErrEnumeration, err)
	}

	autoSelected := false
	if profile == "" {
		profile, autoSelected = e.matchProfile(outputs)
		if layout, err = e.loadLayout(profile); err != nil {
			return nil, err
		}
	}

	plan := planner.BuildRestorePlan(outputs, layout, excluded)

	result := &RestoreResult{
		Profile:      profile,
		AutoSelected: autoSelected,
		Plan:         plan,
		DryRun:       req.DryRun,
		Excluded:     excluded.Names(),
		Applied:      []planner.Action{},
		Unchanged:    []planner.Action{},
		Failed:       []ApplyFailure{},
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	for _, action := range plan.Actions {
		e.logger.Debug("planned", "action", action.String())
	}

	if req.DryRun {
		return result, nil
	}

	for _, action := range plan.Applies() {
		if action.UpToDate() {
			result.Unchanged = append(result.Unchanged, action)
			continue
		}

		target := compositor.Target{Name: action.Output, Identity: action.Identity}
		if err := e.backend.Apply(ctx, target, *action.Target); err != nil {
			e.logger.Error("apply failed", "head", action.Output, "key", action.Identity.Key(), "error", err)
			result.Failed = append(result.Failed, ApplyFailure{Action: action, Error: err.Error(), err: err})
			continue
		}
		e.logger.Info("applied", "head", action.Output, "mode", action.Target.String())
		result.Applied = append(result.Applied, action)
	}

	if len(result.Failed) > 0 {
		causes := make([]error, 0, len(result.Failed))
		for _, f := range result.Failed {
			causes = append(causes, f.Unwrap())
		}
		return result, fmt.Errorf("%w: %d of %d: %w",
			ErrApplyFailed, len(result.Failed), len(plan.Applies()), errors.Join(causes...))
	}
	return result, nil
}

// matchProfile returns the saved profile whose fingerprint equals that of
// the connected outputs. DefaultProfile wins a tie, otherwise the first
// profile in name order. Unreadable profiles are skipped. Reports false and
// DefaultProfile when nothing matches.
func (e *Engine) matchProfile(outputs []display.Output) (string, bool) {
	profiles, err := e.store.List()
	if err != nil {
		e.logger.Warn("cannot list profiles", "error", err)
		return DefaultProfile, false
	}

	fingerprint := connectedFingerprint(outputs)
	match := ""
	for _, profile := range profiles {
		layout, err := e.store.Load(profile)
		if err != nil {
			e.logger.Warn("skipping unreadable profile", "profile", profile, "error", err)
			continue
		}
		if layout.Fingerprint != fingerprint {
			continue
		}
		if profile == DefaultProfile {
			return profile, true
		}
		if match == "" {
			match = profile
		}
	}

	if match == "" {
		return DefaultProfile, false
	}
	e.logger.Info("selected profile by connected displays", "profile", match)
	return match, true
}

// loadLayout maps store errors onto the engine's error taxonomy.
func (e *Engine) loadLayout(profile string) (*state.Layout, error) {
	layout, err := e.store.Load(profile)
	if err == nil {
		return layout, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for profile %q (run 'screenkeep save' first)", ErrNoSavedLayout, profile)
	}
	if errors.Is(err, state.ErrCorruptLayout) {
		return nil, wrap(ErrConfigParse, err)
	}
	return nil, fmt.Errorf("failed to load layout %q: %w", profile, err)
}
