// Package engine provides the core operations of screenkeep.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level components. Every dependency is passed in explicitly; nothing
// is read from globals, so the same engine can be driven by tests with fake
// compositors and in-memory stores.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Save: captures the connected outputs into a layout profile
//   - Restore: plans and applies a saved layout, honouring lid rules
//   - Info: reports connected heads and how they match the saved layout
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/screenkeep/internal/clock"
	"github.com/danieljhkim/screenkeep/internal/compositor"
	"github.com/danieljhkim/screenkeep/internal/config"
	"github.com/danieljhkim/screenkeep/internal/lid"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// DefaultProfile is used when a request names no profile.
const DefaultProfile = "default"

// Options carries the per-invocation configuration.
type Options struct {
	// LidRules are evaluated on every restore and info call
	LidRules []config.LidRule
}

// Engine orchestrates all screenkeep operations.
// It is the main API surface called by the CLI.
type Engine struct {
	backend compositor.Backend
	store   state.LayoutStore
	lids    *lid.Monitor
	clock   clock.Clock
	logger  *slog.Logger
	options Options
}

// New creates a new Engine with the given dependencies.
func New(
	backend compositor.Backend,
	store state.LayoutStore,
	lids *lid.Monitor,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Engine {
	return &Engine{
		backend: backend,
		store:   store,
		lids:    lids,
		clock:   clk,
		logger:  logger,
		options: opts,
	}
}

func profileOrDefault(profile string) string {
	if profile == "" {
		return DefaultProfile
	}
	return profile
}

// wrap tags err with sentinel unless it already carries it.
func wrap(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
