package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"scratchbook.dev/pkg/scratchbook/internal/controller"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const lastGoodTimeFormat = "20060102T150405.000000000"

// watchSession reruns one cell of an open notebook. It keeps the backup of
// the last notebook content that compiled cleanly.
type watchSession struct {
	w        *workflow
	doc      *m.Document
	cell     int
	lastGood *Backup
	runs     int
}

// Watch runs the selected cell, then reruns it every time the notebook file
// is written, until ctx is cancelled.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	doc, err := w.provider.Open(ctx, args.Location, false)
	if err != nil {
		return fmt.Errorf("open notebook: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("Failed to close watcher", "error", err)
		}
	}()

	target, err := filepath.Abs(string(args.Location))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args.Location, err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	if err := w.ui.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.ui.Close(ctx)

	session := &watchSession{w: w, doc: doc, cell: args.Cell}

	unsubscribe := w.provider.Subscribe(doc.ID, func(event DocumentEvent) {
		if event.Type == EventChanged {
			session.rerun(ctx)
		}
	})
	defer unsubscribe()

	w.ui.DisplayWatching(ctx, args.Location)
	session.rerun(ctx)

	return w.watchLoop(ctx, watcher, target, session)
}

func (w *workflow) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, session *watchSession) error {
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)

	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Watch stopped", "notebook", session.doc.Location, "runs", session.runs)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !affects(event, target) {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(w.config.Debounce)
			} else {
				debounce.Reset(w.config.Debounce)
			}

			fire = debounce.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("Watcher error", "error", err)

		case <-fire:
			fire = nil

			if err := session.reload(ctx); err != nil {
				slog.Error("Failed to reload notebook", "notebook", session.doc.Location, "error", err)
			}
		}
	}
}

// matchesTemplate reports whether doc has exactly the template's cells, which
// is also what an unreadable notebook decodes to.
func matchesTemplate(doc *m.Document) bool {
	template := m.Template()
	if len(doc.Cells) != len(template.Cells) {
		return false
	}

	for i, want := range template.Cells {
		got := doc.Cells[i]
		if got.Kind != want.Kind || got.Language != want.Language || got.Content != want.Content {
			return false
		}
	}

	return true
}

func affects(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload replaces the session's cells with the persisted ones and tells the
// document's subscribers.
func (s *watchSession) reload(ctx context.Context) error {
	fresh, err := s.w.provider.Open(ctx, s.doc.Location, false)
	if err != nil {
		return err
	}

	if matchesTemplate(fresh) {
		slog.Info("Reloaded notebook is the empty template; it may be malformed or still being written",
			"notebook", s.doc.Location)
	}

	s.doc.Cells = fresh.Cells
	s.w.provider.NotifyChanged(s.doc, s.doc.Location)

	return nil
}

func (s *watchSession) rerun(ctx context.Context) {
	s.runs++

	result, err := s.w.runCell(ctx, s.doc, s.cell)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("Watch run failed", "notebook", s.doc.Location, "error", err)
		}

		return
	}

	if result.State == m.Succeeded {
		s.keepLastGood(ctx, result.StartedAt)
	}
}

// keepLastGood backs up the current content and disposes the previous backup.
func (s *watchSession) keepLastGood(ctx context.Context, at time.Time) {
	dir := s.w.config.BackupDir
	if dir == "" {
		dir = filepath.Dir(string(s.doc.Location))
	} else if err := s.w.storage.MkdirAll(ctx, m.Path(dir)); err != nil {
		slog.Error("Failed to create backup directory", "dir", dir, "error", err)
		return
	}

	name := fmt.Sprintf("%s.%s.last-good", filepath.Base(string(s.doc.Location)), at.UTC().Format(lastGoodTimeFormat))

	backup, err := s.w.provider.Backup(ctx, s.doc, s.w.storage.JoinPath(dir, name))
	if err != nil {
		slog.Error("Failed to back up notebook", "notebook", s.doc.Location, "error", err)
		return
	}

	previous := s.lastGood
	s.lastGood = backup

	if previous != nil && previous.Location != backup.Location {
		if err := previous.Dispose(ctx); err != nil {
			slog.Error("Failed to dispose previous backup", "backup", previous.Location, "error", err)
		}
	}
}
