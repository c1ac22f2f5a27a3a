package engine

import (
	"time"

	"github.com/danieljhkim/screenkeep/internal/display"
	"github.com/danieljhkim/screenkeep/internal/planner"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// SaveResult represents the result of a save operation.
type SaveResult struct {
	Profile string        `json:"profile"`
	Path    string        `json:"path"`
	Layout  *state.Layout `json:"layout"`
	DryRun  bool          `json:"dryRun"`

	// Fallback lists heads saved without a serial number
	Fallback []string `json:"fallback,omitempty"`
}

// ApplyFailure records an output the compositor refused to reconfigure.
type ApplyFailure struct {
	Action planner.Action `json:"action"`
	Error  string         `json:"error"`

	err error
}

// Unwrap returns the underlying apply error.
func (f ApplyFailure) Unwrap() error {
	return f.err
}

// RestoreResult represents the result of a restore operation.
type RestoreResult struct {
	Profile string `json:"profile"`

	// AutoSelected is set when no profile was requested and Profile was
	// chosen because its saved displays match the connected ones
	AutoSelected bool `json:"autoSelected"`

	Plan   *planner.RestorePlan `json:"plan"`
	DryRun bool                 `json:"dryRun"`

	// Excluded are the heads excluded by closed lids
	Excluded []string `json:"excluded"`

	// Applied are the apply actions sent to the compositor
	Applied []planner.Action `json:"applied"`

	// Unchanged are apply actions whose output already had the saved mode
	Unchanged []planner.Action `json:"unchanged"`

	// Failed are the apply actions the compositor rejected
	Failed []ApplyFailure `json:"failed"`

	// Warnings are non-fatal problems such as unreadable lid files
	Warnings []string `json:"warnings,omitempty"`
}

// HeadInfo describes one connected head.
type HeadInfo struct {
	Name     string       `json:"name"`
	Make     string       `json:"make"`
	Model    string       `json:"model"`
	Serial   string       `json:"serial"`
	Key      string       `json:"key"`
	Fallback bool         `json:"fallback"`
	Mode     display.Mode `json:"mode"`

	// LidClosed is set when a lid rule currently excludes the head
	LidClosed bool `json:"lidClosed"`

	// Saved is set when the profile has an entry for the head's identity
	Saved bool `json:"saved"`
}

// InfoResult represents connected head information.
type InfoResult struct {
	Backend     string     `json:"backend"`
	Profile     string     `json:"profile"`
	StorePath   string     `json:"storePath"`
	Heads       []HeadInfo `json:"heads"`
	Fingerprint string     `json:"fingerprint"`

	// SavedFingerprint is empty when the profile was never saved
	SavedFingerprint string     `json:"savedFingerprint,omitempty"`
	SavedAt          *time.Time `json:"savedAt,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Matches reports whether the connected heads are exactly the saved set.
func (r *InfoResult) Matches() bool {
	return r.SavedFingerprint != "" && r.SavedFingerprint == r.Fingerprint
}

// ProfilesResult lists saved profiles.
type ProfilesResult struct {
	Profiles []string `json:"profiles"`
}
