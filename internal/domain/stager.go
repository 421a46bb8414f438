package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const stagedFileMode = 0o600

// ErrNothingToStage reports that a run had nothing to stage: the notebook has
// no manifest cell or no workspace root could be resolved. It is a benign
// outcome, not a failure.
var ErrNothingToStage = errors.New("nothing to stage")

// ErrCellOutOfRange is returned when a cell index does not exist in the document.
var ErrCellOutOfRange = errors.New("cell index out of range")

// Stager writes the manifest cell and one code cell into a staging directory.
type Stager interface {
	// Stage replaces every entry of targetDir with the manifest file and the
	// code file built from doc.Cells[cellIndex]. targetDir must exist.
	Stage(ctx context.Context, doc *m.Document, cellIndex int, targetDir m.Path) (m.StagedProject, error)
}

type stager struct {
	storage adapter.StorageAdapter
}

// NewStager constructs a Stager backed by storage.
func NewStager(storage adapter.StorageAdapter) Stager {
	return &stager{storage: storage}
}

func (s *stager) Stage(ctx context.Context, doc *m.Document, cellIndex int, targetDir m.Path) (m.StagedProject, error) {
	if cellIndex < 0 || cellIndex >= len(doc.Cells) {
		return m.StagedProject{}, fmt.Errorf("%w: %d", ErrCellOutOfRange, cellIndex)
	}

	manifestIndex := doc.ManifestIndex()
	if manifestIndex < 0 {
		return m.StagedProject{}, fmt.Errorf("%w: no %s cell", ErrNothingToStage, m.LanguageManifest)
	}

	if err := s.clear(ctx, targetDir); err != nil {
		return m.StagedProject{}, err
	}

	project := m.StagedProject{
		Dir:      targetDir,
		Manifest: s.storage.JoinPath(string(targetDir), m.ManifestFileName),
		Code:     s.storage.JoinPath(string(targetDir), m.CodeFileName),
	}

	if err := s.writeStagedFile(ctx, project.Manifest, doc.Cells[manifestIndex].Content); err != nil {
		return m.StagedProject{}, err
	}

	if err := s.writeStagedFile(ctx, project.Code, doc.Cells[cellIndex].Content); err != nil {
		return m.StagedProject{}, err
	}

	return project, nil
}

// clear deletes every entry of dir concurrently. Individual failures are
// logged and do not stop the other deletions or the staging pass.
func (s *stager) clear(ctx context.Context, dir m.Path) error {
	entries, err := s.storage.ReadDir(ctx, dir)
	if err != nil {
		slog.Error("Failed to list staging directory", "dir", dir, "error", err)
		return fmt.Errorf("list staging directory: %w", err)
	}

	var group errgroup.Group

	for _, entry := range entries {
		group.Go(func() error {
			if err := s.storage.Remove(ctx, entry); err != nil {
				slog.Error("Failed to delete staged entry", "entry", entry, "error", err)
			}

			return nil
		})
	}

	_ = group.Wait()

	slog.Debug("Cleared staging directory", "dir", dir, "entries", len(entries))

	return nil
}

func (s *stager) writeStagedFile(ctx context.Context, path m.Path, content string) error {
	if err := s.storage.WriteFile(ctx, path, []byte(content), stagedFileMode); err != nil {
		slog.Error("Failed to write staged file", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", filepath.Base(string(path)), err)
	}

	return nil
}
