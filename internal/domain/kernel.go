package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// Kernel executes notebook cells: it stages the manifest and the selected
// cell, compiles the result and moves the cell through its run states.
type Kernel interface {
	ExecuteCell(ctx context.Context, doc *m.Document, cellIndex int) (m.RunResult, error)

	// CancelCellExecution is not implemented and does nothing.
	CancelCellExecution(ctx context.Context, doc *m.Document, cellIndex int) error
	// ExecuteAllCells is not implemented and does nothing.
	ExecuteAllCells(ctx context.Context, doc *m.Document) error
	// CancelAllCellsExecution is not implemented and does nothing.
	CancelAllCellsExecution(ctx context.Context, doc *m.Document) error
}

// KernelConfig holds the settings a kernel runs with.
type KernelConfig struct {
	// StagingDir is the staging directory relative to the workspace root.
	StagingDir string
	Options    m.CompilerOptions
}

type kernel struct {
	workspace adapter.WorkspaceAdapter
	stager    Stager
	compiler  Compiler
	config    KernelConfig
	now       func() time.Time

	mu    sync.Mutex
	locks map[m.Path]chan struct{}

	// stateMu guards the run state of every cell the kernel moves.
	stateMu sync.Mutex
}

// NewKernel constructs a Kernel.
func NewKernel(workspace adapter.WorkspaceAdapter, stager Stager, compiler Compiler, config KernelConfig) Kernel {
	return &kernel{
		workspace: workspace,
		stager:    stager,
		compiler:  compiler,
		config:    config,
		now:       time.Now,
		locks:     map[m.Path]chan struct{}{},
	}
}

func (k *kernel) ExecuteCell(ctx context.Context, doc *m.Document, cellIndex int) (m.RunResult, error) {
	if cellIndex < 0 || cellIndex >= len(doc.Cells) {
		return m.RunResult{}, fmt.Errorf("%w: %d", ErrCellOutOfRange, cellIndex)
	}

	result := m.RunResult{CellIndex: cellIndex, StartedAt: k.now()}

	if err := k.transition(doc, cellIndex, m.Running); err != nil {
		return result, err
	}

	err := k.run(ctx, doc, cellIndex, &result)

	final := m.Failed
	if err == nil && result.Outcome == m.OutcomeCompiled && result.Compile.ExitCode == ExitOK {
		final = m.Succeeded
	}

	if terr := k.transition(doc, cellIndex, final); terr != nil {
		return result, errors.Join(err, terr)
	}

	result.State = final
	result.Duration = k.now().Sub(result.StartedAt)

	slog.Debug("Cell executed", "cell", cellIndex, "state", final, "outcome", result.Outcome)

	return result, err
}

func (k *kernel) run(ctx context.Context, doc *m.Document, cellIndex int, result *m.RunResult) error {
	root, ok := k.workspace.ResolveRoot(ctx, doc.Location)
	if !ok {
		result.Outcome = m.OutcomeNoOp
		result.Reason = "no workspace root"

		return nil
	}

	targetDir := StagingDir(root, k.config.StagingDir)

	unlock, err := k.lock(ctx, targetDir)
	if err != nil {
		result.Outcome = m.OutcomeCancelled
		return err
	}

	defer unlock()

	staged, err := k.stager.Stage(ctx, doc, cellIndex, targetDir)
	if errors.Is(err, ErrNothingToStage) {
		result.Outcome = m.OutcomeNoOp
		result.Reason = err.Error()

		return nil
	}

	if err != nil {
		result.Outcome = m.OutcomeError
		return fmt.Errorf("stage: %w", err)
	}

	result.Staged = staged

	if err := ctx.Err(); err != nil {
		result.Outcome = m.OutcomeCancelled
		return err
	}

	compiled, err := k.compiler.Compile(ctx, staged.Dir, staged.Files(), k.config.Options)
	if err != nil {
		if ctx.Err() != nil {
			result.Outcome = m.OutcomeCancelled
			return ctx.Err()
		}

		result.Outcome = m.OutcomeError

		return err
	}

	result.Outcome = m.OutcomeCompiled
	result.Compile = compiled

	return nil
}

// StagingDir places dir under root unless it is already absolute. The result
// is always absolute: the compiler runs inside it and resolves the staged
// files from there.
func StagingDir(root m.Path, dir string) m.Path {
	target := dir
	if !filepath.IsAbs(dir) {
		target = filepath.Join(string(root), dir)
	}

	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	return m.Path(target)
}

// lock serializes runs that share a staging directory. Waiting respects ctx.
func (k *kernel) lock(ctx context.Context, dir m.Path) (func(), error) {
	k.mu.Lock()

	sem, ok := k.locks[dir]
	if !ok {
		sem = make(chan struct{}, 1)
		k.locks[dir] = sem
	}

	k.mu.Unlock()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (k *kernel) transition(doc *m.Document, cellIndex int, next m.RunState) error {
	k.stateMu.Lock()
	defer k.stateMu.Unlock()

	cell, err := m.Transition(doc.Cells[cellIndex], next)
	if err != nil {
		return err
	}

	doc.Cells[cellIndex] = cell

	return nil
}

func (k *kernel) CancelCellExecution(_ context.Context, _ *m.Document, cellIndex int) error {
	slog.Debug("CancelCellExecution is not implemented", "cell", cellIndex)
	return nil
}

func (k *kernel) ExecuteAllCells(_ context.Context, doc *m.Document) error {
	slog.Debug("ExecuteAllCells is not implemented", "document", doc.ID)
	return nil
}

func (k *kernel) CancelAllCellsExecution(_ context.Context, doc *m.Document) error {
	slog.Debug("CancelAllCellsExecution is not implemented", "document", doc.ID)
	return nil
}
