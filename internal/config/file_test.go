package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFile(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantRules []LidRule
		wantErr   bool
	}{
		{
			name:      "empty file",
			data:      "",
			wantRules: nil,
		},
		{
			name: "single lid rule",
			data: `
[[lid]]
file = "/proc/acpi/button/lid/LID0/state"
head = "eDP-1"
`,
			wantRules: []LidRule{{File: "/proc/acpi/button/lid/LID0/state", Head: "eDP-1"}},
		},
		{
			name: "multiple rules and backend",
			data: `
backend = "hyprctl"

[[lid]]
file = "/proc/acpi/button/lid/LID0/state"
head = "eDP-1"

[[lid]]
file = "/proc/acpi/button/lid/LID1/state"
head = "eDP-2"
`,
			wantRules: []LidRule{
				{File: "/proc/acpi/button/lid/LID0/state", Head: "eDP-1"},
				{File: "/proc/acpi/button/lid/LID1/state", Head: "eDP-2"},
			},
		},
		{
			name:    "malformed toml",
			data:    "[[lid]\nfile = ",
			wantErr: true,
		},
		{
			name: "unknown key",
			data: `
[[lid]]
file = "/proc/acpi/button/lid/LID0/state"
output = "eDP-1"
`,
			wantErr: true,
		},
		{
			name: "missing head",
			data: `
[[lid]]
file = "/proc/acpi/button/lid/LID0/state"
`,
			wantErr: true,
		},
		{
			name: "missing file",
			data: `
[[lid]]
head = "eDP-1"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFile("config.toml", []byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cfg.Lid) != len(tt.wantRules) {
				t.Fatalf("got %d rules, want %d", len(cfg.Lid), len(tt.wantRules))
			}
			for i, rule := range tt.wantRules {
				if cfg.Lid[i] != rule {
					t.Errorf("rule %d = %+v, want %+v", i, cfg.Lid[i], rule)
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if len(cfg.Lid) != 0 || cfg.Backend != "" {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		data := "executable = \"/usr/local/bin/wlr-randr\"\n\n[[lid]]\nfile = \"/tmp/lid\"\nhead = \"eDP-1\"\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.Executable != "/usr/local/bin/wlr-randr" {
			t.Errorf("Executable = %q", cfg.Executable)
		}
		if len(cfg.Lid) != 1 || cfg.Lid[0].Head != "eDP-1" {
			t.Errorf("unexpected lid rules: %+v", cfg.Lid)
		}
	})
}

func TestParseFile_YAML(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		data      string
		wantRules []LidRule
		wantErr   bool
	}{
		{
			name:    "empty document",
			path:    "config.yaml",
			data:    "",
			wantErr: false,
		},
		{
			name: "lid rules",
			path: "config.yml",
			data: `backend: hyprctl
lid:
  - file: /proc/acpi/button/lid/LID0/state
    head: eDP-1
`,
			wantRules: []LidRule{{File: "/proc/acpi/button/lid/LID0/state", Head: "eDP-1"}},
		},
		{
			name: "unknown key",
			path: "config.yaml",
			data: `lid:
  - file: /proc/acpi/button/lid/LID0/state
    output: eDP-1
`,
			wantErr: true,
		},
		{
			name:    "missing head",
			path:    "CONFIG.YAML",
			data:    "lid:\n  - file: /tmp/lid\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFile(tt.path, []byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cfg.Lid) != len(tt.wantRules) {
				t.Fatalf("got %d rules, want %d", len(cfg.Lid), len(tt.wantRules))
			}
			for i, rule := range tt.wantRules {
				if cfg.Lid[i] != rule {
					t.Errorf("rule %d = %+v, want %+v", i, cfg.Lid[i], rule)
				}
			}
		})
	}
}
