package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// DefaultWorkspaceMarkers are the files that mark a workspace root when
// walking up from a notebook.
var DefaultWorkspaceMarkers = []string{"scratchbook.yaml", "package.json", ".git"}

// WorkspaceAdapter resolves the workspace root a notebook is staged into.
// It yields zero or one root. hint is the notebook location, if known.
type WorkspaceAdapter interface {
	ResolveRoot(ctx context.Context, hint m.Path) (m.Path, bool)
}

// FixedWorkspaceAdapter always resolves to a configured root. An empty root
// resolves to nothing.
type FixedWorkspaceAdapter struct {
	root m.Path
}

// NewFixedWorkspaceAdapter constructs a FixedWorkspaceAdapter.
func NewFixedWorkspaceAdapter(root m.Path) *FixedWorkspaceAdapter {
	return &FixedWorkspaceAdapter{root: root}
}

// ResolveRoot returns the absolute configured root when it is an existing
// directory. A relative root is taken from the working directory.
func (a *FixedWorkspaceAdapter) ResolveRoot(ctx context.Context, _ m.Path) (m.Path, bool) {
	if a.root == "" || ctx.Err() != nil {
		return "", false
	}

	root, err := filepath.Abs(string(a.root))
	if err != nil {
		slog.Debug("Failed to resolve workspace root", "root", a.root, "error", err)
		return "", false
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		slog.Debug("Configured workspace root is not a directory", "root", root, "error", err)
		return "", false
	}

	return m.Path(root), true
}

// MarkerWorkspaceAdapter searches for a marker file walking up the directory
// tree from the notebook location.
type MarkerWorkspaceAdapter struct {
	markers []string
}

// NewMarkerWorkspaceAdapter constructs a MarkerWorkspaceAdapter. With no
// markers it falls back to DefaultWorkspaceMarkers.
func NewMarkerWorkspaceAdapter(markers ...string) *MarkerWorkspaceAdapter {
	if len(markers) == 0 {
		markers = DefaultWorkspaceMarkers
	}

	return &MarkerWorkspaceAdapter{markers: markers}
}

// ResolveRoot walks up from the hint's directory until a marker is found.
// Without a hint there is nothing to walk from.
func (a *MarkerWorkspaceAdapter) ResolveRoot(ctx context.Context, hint m.Path) (m.Path, bool) {
	if hint == "" {
		return "", false
	}

	abs, err := filepath.Abs(string(hint))
	if err != nil {
		slog.Debug("Failed to resolve notebook path", "hint", hint, "error", err)
		return "", false
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		if ctx.Err() != nil {
			return "", false
		}

		for _, marker := range a.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			slog.Debug("No workspace marker found", "hint", hint, "markers", a.markers)
			return "", false
		}

		dir = parent
	}
}
