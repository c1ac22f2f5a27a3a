package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a malformed configuration file.
var ErrInvalidConfig = errors.New("invalid configuration")

// LidRule excludes Head from restores while File reports a closed lid.
//
// Head is matched against the output's current port name, not its hardware
// identity.
type LidRule struct {
	File string `toml:"file" yaml:"file" json:"file"`
	Head string `toml:"head" yaml:"head" json:"head"`
}

// File is the parsed configuration file.
type File struct {
	// Backend selects the compositor backend ("wlr-randr" or "hyprctl").
	Backend string `toml:"backend" yaml:"backend"`

	// Executable overrides the backend binary path.
	Executable string `toml:"executable" yaml:"executable"`

	// Lid lists the lid rules, written as [[lid]] tables.
	Lid []LidRule `toml:"lid" yaml:"lid"`
}

// LoadFile reads and validates the configuration file at path.
// A missing file yields an empty configuration.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseFile(path, data)
}

// ParseFile decodes configuration data. Files ending in .yaml or .yml are
// YAML, anything else is TOML. Unknown keys are rejected in both formats.
func ParseFile(path string, data []byte) (*File, error) {
	var (
		cfg *File
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)
	default:
		cfg, err = decodeTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

func decodeTOML(data []byte) (*File, error) {
	var cfg File
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

func decodeYAML(data []byte) (*File, error) {
	var cfg File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every lid rule names both a file and a head.
func (f *File) Validate() error {
	for i, rule := range f.Lid {
		if strings.TrimSpace(rule.File) == "" {
			return fmt.Errorf("lid rule %d: file must not be empty", i+1)
		}
		if strings.TrimSpace(rule.Head) == "" {
			return fmt.Errorf("lid rule %d: head must not be empty", i+1)
		}
	}
	return nil
}
