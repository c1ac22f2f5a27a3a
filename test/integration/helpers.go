package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/screenkeep/internal/clock"
	"github.com/danieljhkim/screenkeep/internal/compositor"
	"github.com/danieljhkim/screenkeep/internal/config"
	"github.com/danieljhkim/screenkeep/internal/engine"
	"github.com/danieljhkim/screenkeep/internal/fsops"
	"github.com/danieljhkim/screenkeep/internal/lid"
	"github.com/danieljhkim/screenkeep/internal/logging"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
}

func newTestFS() *testFS {
	return &testFS{files: make(map[string][]byte)}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ListFiles(dir, ext string) ([]string, error) {
	names := []string{}
	for p := range fs.files {
		if filepath.Dir(p) == dir && strings.HasSuffix(p, ext) {
			names = append(names, strings.TrimSuffix(filepath.Base(p), ext))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fsops.ValidateIdentifier(id)
}

// hyprMonitor is one head of the simulated Hyprland session, in the shape
// `hyprctl -j monitors all` prints.
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

// hyprland simulates hyprctl: it answers monitor queries and applies
// `keyword monitor` rules to its own state.
type hyprland struct {
	monitors []hyprMonitor
	rules    []string
	reject   map[string]string
}

func newHyprland(monitors ...hyprMonitor) *hyprland {
	return &hyprland{monitors: monitors, reject: map[string]string{}}
}

func (h *hyprland) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	switch {
	case strings.Join(args, " ") == "-j monitors all":
		return json.Marshal(h.monitors)
	case len(args) == 3 && args[0] == "keyword" && args[1] == "monitor":
		return h.keyword(args[2])
	default:
		return nil, fmt.Errorf("unexpected hyprctl call: %v", args)
	}
}

func (h *hyprland) keyword(rule string) ([]byte, error) {
	h.rules = append(h.rules, rule)
	fields := strings.Split(rule, ",")

	m := h.find(fields[0])
	if m == nil {
		return []byte("invalid monitor"), nil
	}
	if reply, ok := h.reject[m.Name]; ok {
		return []byte(reply), nil
	}
	if len(fields) == 2 && fields[1] == "disable" {
		m.Disabled = true
		return []byte("ok"), nil
	}
	if len(fields) != 8 {
		return []byte("invalid rule"), nil
	}

	var refresh string
	if _, err := fmt.Sscanf(strings.Replace(fields[1], "@", " ", 1), "%dx%d %s", &m.Width, &m.Height, &refresh); err != nil {
		return nil, err
	}
	m.RefreshRate, _ = strconv.ParseFloat(refresh, 64)
	if _, err := fmt.Sscanf(fields[2], "%dx%d", &m.X, &m.Y); err != nil {
		return nil, err
	}
	m.Scale, _ = strconv.ParseFloat(fields[3], 64)
	m.Transform, _ = strconv.Atoi(fields[5])
	m.Vrr = fields[7] == "1"
	m.Disabled = false
	return []byte("ok"), nil
}

func (h *hyprland) find(name string) *hyprMonitor {
	for i := range h.monitors {
		if h.monitors[i].Name == name {
			return &h.monitors[i]
		}
	}
	return nil
}

// setupTestEngine wires an engine to the simulated compositor and an
// in-memory filesystem.
func setupTestEngine(t *testing.T, compositorState *hyprland, rules ...config.LidRule) (*engine.Engine, *testFS) {
	t.Helper()

	fs := newTestFS()
	backend, err := compositor.New(compositor.BackendHyprctl, "hyprctl", compositorState)
	if err != nil {
		t.Fatalf("compositor.New() error = %v", err)
	}
	logger := logging.Discard()
	store := state.NewFileLayoutStore(fs, "/state/screenkeep")
	clk := clock.FixedClock{At: time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)}

	eng := engine.New(backend, store, lid.NewMonitor(fs, logger), clk, logger, engine.Options{LidRules: rules})
	return eng, fs
}

func dellMonitor(port string, x int) hyprMonitor {
	return hyprMonitor{
		Name: port, Make: "Dell Inc.", Model: "DELL U2412M", Serial: "S1",
		Width: 1920, Height: 1080, RefreshRate: 60, X: x, Scale: 1,
	}
}

func laptopPanel(x int) hyprMonitor {
	return hyprMonitor{
		Name: "eDP-1", Make: "BOE", Model: "0x095F",
		Width: 2256, Height: 1504, RefreshRate: 59.999, X: x, Scale: 1.5,
	}
}
