package compositor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/danieljhkim/screenkeep/internal/display"
)

// Hyprctl drives Hyprland through hyprctl.
type Hyprctl struct {
	executable string
	runner     Runner
}

// NewHyprctl creates a new Hyprctl backend.
func NewHyprctl(executable string, runner Runner) *Hyprctl {
	return &Hyprctl{executable: executable, runner: runner}
}

// Name returns the backend name.
func (h *Hyprctl) Name() string {
	return BackendHyprctl
}

// hyprMonitor matches the fields of `hyprctl -j monitors all` we use.
type hyprMonitor struct {
	Name        string  `json:"name"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Serial      string  `json:"serial"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refreshRate"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Scale       float64 `json:"scale"`
	Transform   int     `json:"transform"`
	Vrr         bool    `json:"vrr"`
	Disabled    bool    `json:"disabled"`
}

// Enumerate runs `hyprctl -j monitors all`, which includes disabled heads.
func (h *Hyprctl) Enumerate(ctx context.Context) ([]display.Output, error) {
	out, err := h.runner.Output(ctx, h.executable, "-j", "monitors", "all")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	var monitors []hyprMonitor
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, fmt.Errorf("%w: invalid hyprctl output: %v", ErrEnumeration, err)
	}

	outputs := make([]display.Output, 0, len(monitors))
	for _, m := range monitors {
		o := display.Output{
			Name:   m.Name,
			Make:   m.Make,
			Model:  m.Model,
			Serial: m.Serial,
		}
		if !m.Disabled {
			o.Mode = display.Mode{
				Width:        m.Width,
				Height:       m.Height,
				Refresh:      m.RefreshRate,
				Scale:        m.Scale,
				Transform:    display.TransformFromIndex(m.Transform),
				X:            m.X,
				Y:            m.Y,
				Enabled:      true,
				AdaptiveSync: m.Vrr,
			}
		}
		outputs = append(outputs, o)
	}
	return outputs, nil
}

// Apply sends a `keyword monitor` rule for a single output. hyprctl exits
// zero on rejected keywords, so anything but "ok" is treated as a failure.
func (h *Hyprctl) Apply(ctx context.Context, target Target, mode display.Mode) error {
	out, err := h.runner.Output(ctx, h.executable, "keyword", "monitor", monitorRule(target.Name, mode))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApply, target.Name, err)
	}
	if reply := strings.TrimSpace(string(out)); reply != "" && reply != "ok" {
		return fmt.Errorf("%w: %s: hyprctl: %s", ErrApply, target.Name, reply)
	}
	return nil
}

func monitorRule(name string, mode display.Mode) string {
	if !mode.Enabled {
		return name + ",disable"
	}

	vrr := 0
	if mode.AdaptiveSync {
		vrr = 1
	}

	return fmt.Sprintf("%s,%dx%d@%s,%dx%d,%s,transform,%d,vrr,%d",
		name,
		mode.Width, mode.Height, strconv.FormatFloat(mode.Refresh, 'f', -1, 64),
		mode.X, mode.Y,
		strconv.FormatFloat(mode.Scale, 'f', -1, 64),
		display.TransformIndex(mode.Transform),
		vrr,
	)
}
