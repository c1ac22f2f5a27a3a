package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/screenkeep/internal/clock"
	"github.com/danieljhkim/screenkeep/internal/compositor"
	"github.com/danieljhkim/screenkeep/internal/config"
	"github.com/danieljhkim/screenkeep/internal/engine"
	"github.com/danieljhkim/screenkeep/internal/fsops"
	"github.com/danieljhkim/screenkeep/internal/lid"
	"github.com/danieljhkim/screenkeep/internal/logging"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
// Flags win over the config file, which wins over built-in defaults.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if configPath != "" {
		paths.ConfigFile = configPath
	}

	file, err := config.LoadFile(paths.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrConfigParse, err)
	}

	name := backendName
	if name == "" {
		name = file.Backend
	}
	executable := executablePath
	if executable == "" {
		executable = file.Executable
	}

	backend, err := compositor.New(name, executable, compositor.NewExecRunner())
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.Options{Level: logLevel, Format: logFormat})
	fs := fsops.NewRealFS()
	store := state.NewFileLayoutStore(fs, paths.StateDir)

	logger.Debug("configuration loaded",
		"config", paths.ConfigFile, "state", paths.StateDir, "backend", backend.Name(), "lidRules", len(file.Lid))

	return engine.New(
		backend,
		store,
		lid.NewMonitor(fs, logger),
		&clock.RealClock{},
		logger,
		engine.Options{LidRules: file.Lid},
	), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
