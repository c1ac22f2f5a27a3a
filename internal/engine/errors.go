package engine

import (
	"errors"

	"github.com/danieljhkim/screenkeep/internal/compositor"
	"github.com/danieljhkim/screenkeep/internal/fsops"
	"github.com/danieljhkim/screenkeep/internal/lid"
	"github.com/danieljhkim/screenkeep/internal/state"
)

var (
	// ErrEnumeration indicates the compositor could not report its outputs.
	ErrEnumeration = compositor.ErrEnumeration

	// ErrConfigParse indicates a malformed layout or configuration file.
	ErrConfigParse = errors.New("configuration parse error")

	// ErrNoSavedLayout indicates restore was requested for a profile that
	// was never saved.
	ErrNoSavedLayout = errors.New("no saved layout")

	// ErrApplyFailed indicates at least one output could not be restored.
	ErrApplyFailed = errors.New("failed to restore some outputs")

	// ErrAmbiguousIdentity indicates connected outputs share an identity.
	ErrAmbiguousIdentity = state.ErrAmbiguousIdentity

	// ErrInvalidProfile indicates a profile name unusable as a file name.
	ErrInvalidProfile = fsops.ErrInvalidIdentifier

	// ErrLidFileRead indicates an unreadable lid state file. It is reported
	// as a warning, never returned.
	ErrLidFileRead = lid.ErrLidFileRead
)
