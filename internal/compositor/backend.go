// Package compositor talks to the Wayland compositor.
//
// Backends enumerate the connected heads and apply a mode to one head at a
// time, so a failure on one output never blocks the others. Both backends
// shell out to the compositor's own tooling through a Runner, which tests
// replace with a fake.
package compositor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/screenkeep/internal/display"
)

// Backend names
const (
	BackendWlrRandr = "wlr-randr"
	BackendHyprctl  = "hyprctl"
)

// Environment variables overriding the default executables.
const (
	EnvWlrRandr = "SCREENKEEP_WLR_RANDR"
	EnvHyprctl  = "SCREENKEEP_HYPRCTL"
)

var (
	// ErrEnumeration indicates the current outputs could not be queried.
	ErrEnumeration = errors.New("failed to enumerate outputs")

	// ErrApply indicates the compositor rejected a mode.
	ErrApply = errors.New("failed to apply mode")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Target identifies the head an apply is aimed at.
type Target struct {
	// Name is the current port name the compositor addresses the head by
	Name string

	// Identity is the resolved hardware identity, for logging
	Identity display.Identity
}

// Backend is the capability screenkeep needs from a compositor.
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Enumerate returns the connected outputs in compositor order.
	Enumerate(ctx context.Context) ([]display.Output, error)

	// Apply sets the mode of a single output.
	Apply(ctx context.Context, target Target, mode display.Mode) error
}

// New creates the backend called name. An empty executable selects the
// environment override or the default binary name.
func New(name, executable string, runner Runner) (Backend, error) {
	if name == "" {
		name = BackendWlrRandr
	}

	switch name {
	case BackendWlrRandr:
		return NewWlrRandr(executableOr(executable, EnvWlrRandr, "wlr-randr"), runner), nil
	case BackendHyprctl:
		return NewHyprctl(executableOr(executable, EnvHyprctl, "hyprctl"), runner), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownBackend, name, BackendWlrRandr, BackendHyprctl)
	}
}

func executableOr(explicit, env, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}
