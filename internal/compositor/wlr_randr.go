package compositor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/danieljhkim/screenkeep/internal/display"
)

// WlrRandr drives compositors implementing wlr-output-management through
// the wlr-randr tool.
type WlrRandr struct {
	executable string
	runner     Runner
}

// NewWlrRandr creates a new WlrRandr backend.
func NewWlrRandr(executable string, runner Runner) *WlrRandr {
	return &WlrRandr{executable: executable, runner: runner}
}

// Name returns the backend name.
func (w *WlrRandr) Name() string {
	return BackendWlrRandr
}

type wlrHead struct {
	Name         string       `json:"name"`
	Make         *string      `json:"make"`
	Model        *string      `json:"model"`
	Serial       *string      `json:"serial"`
	Enabled      bool         `json:"enabled"`
	Modes        []wlrMode    `json:"modes"`
	Position     *wlrPosition `json:"position"`
	Transform    *string      `json:"transform"`
	Scale        *float64     `json:"scale"`
	AdaptiveSync *bool        `json:"adaptive_sync"`
}

type wlrMode struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Refresh float64 `json:"refresh"`
	Current bool    `json:"current"`
}

type wlrPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Enumerate runs `wlr-randr --json`.
func (w *WlrRandr) Enumerate(ctx context.Context) ([]display.Output, error) {
	out, err := w.runner.Output(ctx, w.executable, "--json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	var heads []wlrHead
	if err := json.Unmarshal(out, &heads); err != nil {
		return nil, fmt.Errorf("%w: invalid wlr-randr output: %v", ErrEnumeration, err)
	}

	outputs := make([]display.Output, 0, len(heads))
	for _, h := range heads {
		outputs = append(outputs, h.toOutput())
	}
	return outputs, nil
}

func (h wlrHead) toOutput() display.Output {
	o := display.Output{
		Name:   h.Name,
		Make:   deref(h.Make),
		Model:  deref(h.Model),
		Serial: deref(h.Serial),
	}

	if !h.Enabled || len(h.Modes) == 0 {
		return o
	}

	current := h.Modes[0]
	for _, m := range h.Modes {
		if m.Current {
			current = m
			break
		}
	}

	o.Mode = display.Mode{
		Width:     current.Width,
		Height:    current.Height,
		Refresh:   current.Refresh,
		Scale:     1,
		Transform: display.TransformNormal,
		Enabled:   true,
	}
	if h.Position != nil {
		o.Mode.X = h.Position.X
		o.Mode.Y = h.Position.Y
	}
	if h.Scale != nil {
		o.Mode.Scale = *h.Scale
	}
	if h.Transform != nil {
		o.Mode.Transform = display.NormalizeTransform(*h.Transform)
	}
	if h.AdaptiveSync != nil {
		o.Mode.AdaptiveSync = *h.AdaptiveSync
	}
	return o
}

// Apply runs wlr-randr for a single output.
func (w *WlrRandr) Apply(ctx context.Context, target Target, mode display.Mode) error {
	if _, err := w.runner.Output(ctx, w.executable, wlrArgs(target.Name, mode)...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApply, target.Name, err)
	}
	return nil
}

func wlrArgs(name string, mode display.Mode) []string {
	if !mode.Enabled {
		return []string{"--output", name, "--off"}
	}

	adaptiveSync := "disabled"
	if mode.AdaptiveSync {
		adaptiveSync = "enabled"
	}

	return []string{
		"--output", name,
		"--on",
		"--mode", fmt.Sprintf("%dx%d@%.3fHz", mode.Width, mode.Height, mode.Refresh),
		"--pos", fmt.Sprintf("%d,%d", mode.X, mode.Y),
		"--scale", strconv.FormatFloat(mode.Scale, 'f', -1, 64),
		"--transform", display.NormalizeTransform(mode.Transform),
		"--adaptive-sync", adaptiveSync,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
