// Package adapter contains infrastructure adapters for the scratchbook CLI.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// StorageAdapter abstracts the byte-level storage the domain layer relies on
// to load notebooks and stage projects. It hides direct `os` access so the
// domain logic can be tested without touching the disk.
type StorageAdapter interface {
	// ReadFile loads the bytes stored at path.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the bytes stored at path.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Remove deletes the entry at path, including directory contents.
	Remove(ctx context.Context, path m.Path) error

	// ReadDir lists the entries directly inside dir as full paths, sorted.
	ReadDir(ctx context.Context, dir m.Path) ([]m.Path, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(ctx context.Context, dir m.Path) error

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalStorageAdapter is the os-backed StorageAdapter.
type LocalStorageAdapter struct{}

// NewLocalStorageAdapter constructs a LocalStorageAdapter instance ready to
// be wired into the workflow.
func NewLocalStorageAdapter() *LocalStorageAdapter {
	return &LocalStorageAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalStorageAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - notebook and staged paths are chosen by the user running the CLI
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalStorageAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Remove removes a file or a directory and all its contents.
func (a *LocalStorageAdapter) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.RemoveAll(string(path))
}

// ReadDir lists the entries of dir.
func (a *LocalStorageAdapter) ReadDir(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// MkdirAll creates a directory tree.
func (a *LocalStorageAdapter) MkdirAll(ctx context.Context, dir m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(dir), 0o750)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalStorageAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalStorageAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
