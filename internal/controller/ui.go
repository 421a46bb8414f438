// Package controller provides output adapters for displaying notebooks and run results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// OutputFormat selects how results are written.
type OutputFormat string

// Supported output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name. An empty name means text.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
	}
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeOnce StartMode = iota
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithWatchMode tells the UI that results will keep arriving until the
// context is cancelled, so nothing may block on user input.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// UI defines the interface for displaying notebook state and run results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayCreated(ctx context.Context, location m.Path) error
	DisplayCells(ctx context.Context, location m.Path, cells []m.CellSummary) error
	DisplayRunResult(ctx context.Context, location m.Path, result m.RunResult) error
	DisplayDiff(ctx context.Context, location m.Path, diffs []m.FileDiff) error
	DisplayHistory(ctx context.Context, records []m.RunRecord) error
	DisplayBackup(ctx context.Context, location, destination m.Path) error
	DisplayWatching(ctx context.Context, location m.Path)
}

// NewUI picks the interactive TUI for text output on a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool, format OutputFormat) UI {
	if isTTY && format == FormatText {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd, format)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func applyStartOptions(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeOnce}
	for _, option := range options {
		option(&config)
	}

	return config
}
