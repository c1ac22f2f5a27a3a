// Package lid interprets ACPI lid state files.
//
// A lid rule names a state file (typically /proc/acpi/button/lid/LID0/state,
// whose content reads "state:      closed") and a head to exclude from
// restores while the lid is closed. An unreadable state file never aborts a
// restore: the rule is treated as open and a warning is reported.
package lid

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/danieljhkim/screenkeep/internal/config"
	"github.com/danieljhkim/screenkeep/internal/fsops"
)

// closedSuffix marks a closed lid at the end of the trimmed file content.
const closedSuffix = "closed"

// ErrLidFileRead indicates a lid state file could not be read.
var ErrLidFileRead = errors.New("lid state file unreadable")

// ReadError describes a rule whose state file could not be read.
type ReadError struct {
	Rule config.LidRule
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %s (head %s): %v", ErrLidFileRead, e.Rule.File, e.Rule.Head, e.Err)
}

// Unwrap lets errors.Is match both ErrLidFileRead and the underlying cause.
func (e *ReadError) Unwrap() []error {
	return []error{ErrLidFileRead, e.Err}
}

// HeadSet is a set of head names.
type HeadSet map[string]struct{}

// Contains reports whether name is in the set.
func (s HeadSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the sorted members of the set.
func (s HeadSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Monitor evaluates lid rules.
type Monitor struct {
	fs     fsops.FS
	logger *slog.Logger
}

// NewMonitor creates a Monitor reading state files through fs.
func NewMonitor(fs fsops.FS, logger *slog.Logger) *Monitor {
	return &Monitor{fs: fs, logger: logger}
}

// ExcludedHeads returns the heads whose lid rule reports a closed lid.
//
// Rules are evaluated independently. A rule whose file cannot be read is
// treated as open; its *ReadError is returned in warnings and logged.
func (m *Monitor) ExcludedHeads(rules []config.LidRule) (HeadSet, []error) {
	excluded := make(HeadSet)
	var warnings []error

	for _, rule := range rules {
		data, err := m.fs.ReadFile(rule.File)
		if err != nil {
			readErr := &ReadError{Rule: rule, Err: err}
			m.logger.Warn("treating lid as open", "file", rule.File, "head", rule.Head, "error", err)
			warnings = append(warnings, readErr)
			continue
		}

		if IsClosed(data) {
			m.logger.Debug("lid closed", "file", rule.File, "head", rule.Head)
			excluded[rule.Head] = struct{}{}
		}
	}

	return excluded, warnings
}

// IsClosed reports whether lid state file content describes a closed lid.
func IsClosed(content []byte) bool {
	return bytes.HasSuffix(bytes.TrimSpace(content), []byte(closedSuffix))
}
