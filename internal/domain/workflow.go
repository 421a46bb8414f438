package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	"scratchbook.dev/pkg/scratchbook/internal/controller"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// AutoCell selects the first executable cell that is not the manifest.
const AutoCell = -1

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

const previewWidth = 48

var (
	// ErrCompileFailed is returned when a run compiled but emission was skipped.
	ErrCompileFailed = errors.New("compile failed")
	// ErrDocumentExists is returned when New would overwrite a notebook.
	ErrDocumentExists = errors.New("notebook already exists")
	// ErrNotExecutable is returned when a markup cell is selected for a run.
	ErrNotExecutable = errors.New("cell is not executable")
)

// NewArgs contains the arguments for creating a notebook.
type NewArgs struct {
	Location m.Path
	Force    bool
}

// CellsArgs contains the arguments for listing cells.
type CellsArgs struct {
	Location m.Path
}

// RunArgs contains the arguments for running one cell.
type RunArgs struct {
	Location m.Path
	Cell     int
}

// DiffArgs contains the arguments for comparing staged files with a notebook.
type DiffArgs struct {
	Location m.Path
	Cell     int
}

// WatchArgs contains the arguments for rerunning a cell on every save.
type WatchArgs struct {
	Location m.Path
	Cell     int
}

// HistoryArgs contains the arguments for listing recorded runs. An empty
// Location lists runs of every notebook.
type HistoryArgs struct {
	Location m.Path
	Limit    int
}

// BackupArgs contains the arguments for writing a backup copy.
type BackupArgs struct {
	Location    m.Path
	Destination m.Path
}

// WorkflowConfig holds the settings shared by all commands.
type WorkflowConfig struct {
	// StagingDir is resolved against the workspace root unless absolute.
	StagingDir string
	// BackupDir receives last-good backups in watch mode. Empty means the
	// notebook's own directory.
	BackupDir string
	Debounce  time.Duration
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	New(ctx context.Context, args NewArgs) error
	Cells(ctx context.Context, args CellsArgs) error
	Run(ctx context.Context, args RunArgs) error
	Diff(ctx context.Context, args DiffArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	History(ctx context.Context, args HistoryArgs) error
	Backup(ctx context.Context, args BackupArgs) error
}

type workflow struct {
	storage   adapter.StorageAdapter
	workspace adapter.WorkspaceAdapter
	history   adapter.HistoryStore
	provider  ContentProvider
	kernel    Kernel
	ui        controller.UI
	config    WorkflowConfig
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	storage adapter.StorageAdapter,
	workspace adapter.WorkspaceAdapter,
	history adapter.HistoryStore,
	provider ContentProvider,
	kernel Kernel,
	ui controller.UI,
	config WorkflowConfig,
) Workflow {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	return &workflow{
		storage:   storage,
		workspace: workspace,
		history:   history,
		provider:  provider,
		kernel:    kernel,
		ui:        ui,
		config:    config,
	}
}

func (w *workflow) New(ctx context.Context, args NewArgs) error {
	if !args.Force {
		_, err := w.storage.FileInfo(ctx, args.Location)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrDocumentExists, args.Location)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check %s: %w", args.Location, err)
		}
	}

	doc, err := w.provider.Open(ctx, args.Location, true)
	if err != nil {
		return fmt.Errorf("create notebook: %w", err)
	}

	if err := w.provider.Save(ctx, doc, args.Location); err != nil {
		return fmt.Errorf("save notebook: %w", err)
	}

	return w.ui.DisplayCreated(ctx, args.Location)
}

func (w *workflow) Cells(ctx context.Context, args CellsArgs) error {
	doc, err := w.provider.Open(ctx, args.Location, false)
	if err != nil {
		return fmt.Errorf("open notebook: %w", err)
	}

	return w.ui.DisplayCells(ctx, args.Location, summarize(doc))
}

func summarize(doc *m.Document) []m.CellSummary {
	manifest := doc.ManifestIndex()
	summaries := make([]m.CellSummary, 0, len(doc.Cells))

	for i, cell := range doc.Cells {
		summaries = append(summaries, m.CellSummary{
			Index:    i,
			Kind:     cell.Kind.String(),
			Language: cell.Language,
			Manifest: i == manifest,
			Preview:  preview(cell.Content),
		})
	}

	return summaries
}

// preview shortens cell content to its first non-blank line.
func preview(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) > previewWidth {
		return string(runes[:previewWidth-3]) + "..."
	}

	return line
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	doc, err := w.provider.Open(ctx, args.Location, false)
	if err != nil {
		return fmt.Errorf("open notebook: %w", err)
	}

	if err := w.ui.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.ui.Close(ctx)

	result, err := w.runCell(ctx, doc, args.Cell)
	if err != nil {
		return err
	}

	if result.Outcome == m.OutcomeCompiled && result.Compile.ExitCode != ExitOK {
		return fmt.Errorf("%w: exit code %d", ErrCompileFailed, result.Compile.ExitCode)
	}

	return nil
}

// runCell executes one cell, records the run and displays the result.
func (w *workflow) runCell(ctx context.Context, doc *m.Document, cell int) (m.RunResult, error) {
	index, err := selectCell(doc, cell)
	if err != nil {
		return m.RunResult{}, err
	}

	if err := w.provision(ctx, doc); err != nil {
		return m.RunResult{}, err
	}

	result, runErr := w.kernel.ExecuteCell(ctx, doc, index)
	if result.State.Terminal() {
		w.record(ctx, doc, result)
	}

	if runErr != nil {
		slog.Error("Cell run failed", "notebook", doc.Location, "cell", index, "error", runErr)
		return result, fmt.Errorf("run cell %d: %w", index, runErr)
	}

	if err := w.ui.DisplayRunResult(ctx, doc.Location, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

func selectCell(doc *m.Document, cell int) (int, error) {
	if cell == AutoCell {
		index := doc.FirstCodeIndex()
		if index < 0 {
			return 0, fmt.Errorf("%w: no code cell besides the manifest", ErrCellOutOfRange)
		}

		return index, nil
	}

	if cell < 0 || cell >= len(doc.Cells) {
		return 0, fmt.Errorf("%w: %d", ErrCellOutOfRange, cell)
	}

	if doc.Cells[cell].Kind != m.Executable {
		return 0, fmt.Errorf("%w: %d", ErrNotExecutable, cell)
	}

	return cell, nil
}

// provision creates the staging directory under the workspace root. Without
// a root there is nothing to provision and the kernel reports a no-op.
func (w *workflow) provision(ctx context.Context, doc *m.Document) error {
	root, ok := w.workspace.ResolveRoot(ctx, doc.Location)
	if !ok {
		return nil
	}

	dir := StagingDir(root, w.config.StagingDir)
	if err := w.storage.MkdirAll(ctx, dir); err != nil {
		return fmt.Errorf("create staging directory %s: %w", dir, err)
	}

	return nil
}

// record saves a finished run. History is auxiliary, so failures are logged.
func (w *workflow) record(ctx context.Context, doc *m.Document, result m.RunResult) {
	record := m.RunRecord{
		Notebook:    historyKey(doc.Location),
		CellIndex:   result.CellIndex,
		State:       result.State,
		Outcome:     result.Outcome,
		ExitCode:    result.Compile.ExitCode,
		Diagnostics: result.Compile.Diagnostics,
		StartedAt:   result.StartedAt,
		FinishedAt:  result.StartedAt.Add(result.Duration),
	}

	if _, err := w.history.SaveRun(ctx, record); err != nil {
		slog.Error("Failed to record run", "notebook", doc.Location, "error", err)
	}
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	doc, err := w.provider.Open(ctx, args.Location, false)
	if err != nil {
		return fmt.Errorf("open notebook: %w", err)
	}

	index, err := selectCell(doc, args.Cell)
	if err != nil {
		return err
	}

	diffs, err := w.diffStaged(ctx, doc, index)
	if err != nil {
		return err
	}

	return w.ui.DisplayDiff(ctx, args.Location, diffs)
}

// diffStaged compares what is staged now with what a run of cellIndex would
// stage. It returns nothing when a run would be a no-op.
func (w *workflow) diffStaged(ctx context.Context, doc *m.Document, cellIndex int) ([]m.FileDiff, error) {
	manifest := doc.ManifestIndex()
	if manifest < 0 {
		return nil, nil
	}

	root, ok := w.workspace.ResolveRoot(ctx, doc.Location)
	if !ok {
		return nil, nil
	}

	dir := StagingDir(root, w.config.StagingDir)

	files := []struct {
		name    string
		content string
	}{
		{m.ManifestFileName, doc.Cells[manifest].Content},
		{m.CodeFileName, doc.Cells[cellIndex].Content},
	}

	diffs := make([]m.FileDiff, 0, len(files))

	for _, file := range files {
		staged, err := w.readStaged(ctx, w.storage.JoinPath(string(dir), file.name))
		if err != nil {
			return nil, err
		}

		diff, err := unifiedDiff(file.name, staged, file.content)
		if err != nil {
			return nil, err
		}

		diffs = append(diffs, diff)
	}

	return diffs, nil
}

// readStaged returns the staged file content, or an empty string when the
// file was never staged.
func (w *workflow) readStaged(ctx context.Context, path m.Path) (string, error) {
	data, err := w.storage.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("read staged %s: %w", path, err)
	}

	return string(data), nil
}

func unifiedDiff(name, staged, current string) (m.FileDiff, error) {
	diff := m.FileDiff{Name: name, Changed: staged != current}
	if !diff.Changed {
		return diff, nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(staged),
		B:        difflib.SplitLines(current),
		FromFile: "staged/" + name,
		ToFile:   "notebook/" + name,
		Context:  3,
	})
	if err != nil {
		return m.FileDiff{}, fmt.Errorf("diff %s: %w", name, err)
	}

	diff.Unified = text

	return diff, nil
}

// historyKey is the absolute notebook path runs are recorded under, so that
// every spelling of the same file shares one history.
func historyKey(location m.Path) m.Path {
	if location == "" {
		return ""
	}

	abs, err := filepath.Abs(string(location))
	if err != nil {
		slog.Debug("Failed to resolve notebook path", "notebook", location, "error", err)
		return location
	}

	return m.Path(abs)
}

func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	records, err := w.history.ListRuns(ctx, historyKey(args.Location), args.Limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	return w.ui.DisplayHistory(ctx, records)
}

func (w *workflow) Backup(ctx context.Context, args BackupArgs) error {
	doc, err := w.provider.Open(ctx, args.Location, false)
	if err != nil {
		return fmt.Errorf("open notebook: %w", err)
	}

	destination := args.Destination
	if destination == "" {
		destination = args.Location + ".bak"
	}

	if _, err := w.provider.Backup(ctx, doc, destination); err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	return w.ui.DisplayBackup(ctx, args.Location, destination)
}
