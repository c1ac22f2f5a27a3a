// Package config manages screenkeep configuration and filesystem paths.
//
// Paths follow the XDG base directory layout: saved layouts live under
// $XDG_STATE_HOME/screenkeep and the configuration file is
// $XDG_CONFIG_HOME/screenkeep/config.toml. Both can be overridden with
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "screenkeep"

// Environment variables recognised by DefaultPaths.
const (
	EnvStateDir   = "SCREENKEEP_STATE_DIR"
	EnvConfigFile = "SCREENKEEP_CONFIG"
)

// Paths contains the filesystem locations used by screenkeep.
type Paths struct {
	// StateDir holds one <profile>.json layout file per saved profile
	StateDir string

	// ConfigFile is the TOML file declaring lid rules and backend defaults
	ConfigFile string
}

// DefaultPaths resolves paths from the environment.
//
// Priority for the state directory:
//  1. SCREENKEEP_STATE_DIR
//  2. $XDG_STATE_HOME/screenkeep
//  3. ~/.local/state/screenkeep
//
// Priority for the config file:
//  1. SCREENKEEP_CONFIG
//  2. $XDG_CONFIG_HOME/screenkeep/config.toml
//  3. ~/.config/screenkeep/config.toml
func DefaultPaths() (*Paths, error) {
	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		base, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
		if err != nil {
			return nil, err
		}
		stateDir = filepath.Join(base, appName)
	}

	configFile := os.Getenv(EnvConfigFile)
	if configFile == "" {
		base, err := xdgDir("XDG_CONFIG_HOME", ".config")
		if err != nil {
			return nil, err
		}
		configFile = filepath.Join(base, appName, "config.toml")
	}

	return &Paths{
		StateDir:   stateDir,
		ConfigFile: configFile,
	}, nil
}

// xdgDir returns $env when it is an absolute path, else ~/fallback.
// Relative XDG values are ignored, as the base directory convention requires.
func xdgDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
