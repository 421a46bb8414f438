package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "scratchbook.dev/pkg/scratchbook/internal/adapter/mocks"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const (
	kernelRoot    = m.Path("/work")
	kernelStaging = ".scratchbook/staging"
	kernelTarget  = m.Path("/work/.scratchbook/staging")
)

// compilerFunc adapts a function to the Compiler interface.
type compilerFunc func(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CompileResult, error)

func (f compilerFunc) Compile(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CompileResult, error) {
	return f(ctx, workDir, files, options)
}

func rootedWorkspace(t *testing.T) *adaptermocks.MockWorkspaceAdapter {
	t.Helper()

	workspace := adaptermocks.NewMockWorkspaceAdapter(t)
	workspace.EXPECT().ResolveRoot(mock.Anything, mock.Anything).Return(kernelRoot, true).Maybe()

	return workspace
}

func scenarioDocument() *m.Document {
	return m.NewDocument(
		m.NewCell(m.Executable, m.LanguageManifest, "{}"),
		m.NewCell(m.Executable, m.LanguageTypeScript, "let x: number = 'a';"),
	)
}

func newTestKernel(workspace *adaptermocks.MockWorkspaceAdapter, storage *memoryStorage, compiler Compiler) Kernel {
	return NewKernel(workspace, NewStager(storage), compiler, KernelConfig{
		StagingDir: kernelStaging,
		Options:    m.DefaultCompilerOptions(),
	})
}

func TestKernel_EndToEndWithScriptedOracle(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)
	storage.put(kernelTarget+"/stale.js", "old output")

	codePath := kernelTarget + "/" + m.CodeFileName

	oracle := adaptermocks.NewMockTypeScriptAdapter(t)
	oracle.EXPECT().
		Check(mock.Anything, kernelTarget, []m.Path{codePath}, m.DefaultCompilerOptions()).
		RunAndReturn(func(ctx context.Context, _ m.Path, files []m.Path, _ m.CompilerOptions) (m.CheckOutput, error) {
			text, err := storage.ReadFile(ctx, files[0])
			require.NoError(t, err)
			require.Equal(t, "let x: number = 'a';", string(text), "code must be staged before compiling")

			return m.CheckOutput{
				EmitSkipped: true,
				PreEmit: []m.RawDiagnostic{
					errorDiagnostic(files[0], intPtr(16), 2322, "Type 'string' is not assignable to type 'number'."),
				},
			}, nil
		}).
		Once()

	doc := scenarioDocument()
	k := newTestKernel(rootedWorkspace(t), storage, NewCompiler(oracle, storage))

	result, err := k.ExecuteCell(context.Background(), doc, 1)
	require.NoError(t, err)

	entries, err := storage.ReadDir(context.Background(), kernelTarget)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{codePath, kernelTarget + "/" + m.ManifestFileName}, entries)

	assert.Equal(t, m.OutcomeCompiled, result.Outcome)
	assert.Equal(t, m.Failed, result.State)
	assert.Equal(t, m.Failed, doc.Cells[1].RunState())
	assert.Equal(t, m.Idle, doc.Cells[0].RunState(), "only the executed cell changes state")
	assert.Equal(t, ExitEmitSkipped, result.Compile.ExitCode)

	require.Len(t, result.Compile.Diagnostics, 1)
	diag := result.Compile.Diagnostics[0]
	assert.Equal(t, codePath, diag.File)
	assert.Equal(t, 1, diag.Line)
	assert.Equal(t, 17, diag.Column)
	assert.Contains(t, diag.Message, "not assignable")
}

func TestKernel_Succeeded(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		return m.CompileResult{ExitCode: ExitOK}, nil
	})

	doc := scenarioDocument()
	doc.Cells[1].Content = "let x: number = 1;"

	result, err := newTestKernel(rootedWorkspace(t), storage, compiler).ExecuteCell(context.Background(), doc, 1)
	require.NoError(t, err)

	assert.Equal(t, m.Succeeded, result.State)
	assert.Equal(t, m.Succeeded, doc.Cells[1].RunState())
	assert.Equal(t, kernelTarget, result.Staged.Dir)
}

func TestKernel_RerunFromTerminalState(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	exitCodes := []int{ExitEmitSkipped, ExitOK}
	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		code := exitCodes[0]
		exitCodes = exitCodes[1:]

		return m.CompileResult{ExitCode: code}, nil
	})

	doc := scenarioDocument()
	k := newTestKernel(rootedWorkspace(t), storage, compiler)

	first, err := k.ExecuteCell(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Failed, first.State)

	second, err := k.ExecuteCell(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Succeeded, second.State)
}

func TestKernel_NoWorkspaceRootIsNoOp(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	workspace := adaptermocks.NewMockWorkspaceAdapter(t)
	workspace.EXPECT().ResolveRoot(mock.Anything, m.Path("/elsewhere/demo.scratchbook")).Return("", false).Once()

	doc := scenarioDocument()
	doc.Location = "/elsewhere/demo.scratchbook"

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		t.Fatal("compiler must not run without a workspace root")
		return m.CompileResult{}, nil
	})

	result, err := newTestKernel(workspace, storage, compiler).ExecuteCell(context.Background(), doc, 1)
	require.NoError(t, err)

	assert.Equal(t, m.OutcomeNoOp, result.Outcome)
	assert.Equal(t, m.Failed, result.State)
	assert.Equal(t, m.Failed, doc.Cells[1].RunState())
	assert.Empty(t, result.Compile.Diagnostics)

	_, writes, removes := storage.counts()
	assert.Zero(t, writes)
	assert.Zero(t, removes)
}

func TestKernel_NoManifestIsNoOp(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	doc := m.NewDocument(m.NewCell(m.Executable, m.LanguageTypeScript, "let x = 1;"))

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		t.Fatal("compiler must not run without a manifest")
		return m.CompileResult{}, nil
	})

	result, err := newTestKernel(rootedWorkspace(t), storage, compiler).ExecuteCell(context.Background(), doc, 0)
	require.NoError(t, err)

	assert.Equal(t, m.OutcomeNoOp, result.Outcome)
	assert.Equal(t, m.Failed, doc.Cells[0].RunState())
	assert.Contains(t, result.Reason, "nothing to stage")
}

func TestKernel_StageErrorFails(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)
	storage.failWrite[kernelTarget+"/"+m.ManifestFileName] = errors.New("no space left on device")

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		t.Fatal("compiler must not run after a staging failure")
		return m.CompileResult{}, nil
	})

	doc := scenarioDocument()

	result, err := newTestKernel(rootedWorkspace(t), storage, compiler).ExecuteCell(context.Background(), doc, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left on device")

	assert.Equal(t, m.OutcomeError, result.Outcome)
	assert.Equal(t, m.Failed, doc.Cells[1].RunState())
}

func TestKernel_CompileErrorFails(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	oracleErr := errors.New("compiler exited with code 3")
	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		return m.CompileResult{}, oracleErr
	})

	doc := scenarioDocument()

	result, err := newTestKernel(rootedWorkspace(t), storage, compiler).ExecuteCell(context.Background(), doc, 1)
	require.ErrorIs(t, err, oracleErr)
	assert.Equal(t, m.OutcomeError, result.Outcome)
	assert.Equal(t, m.Failed, doc.Cells[1].RunState())
}

func TestKernel_CancelledBetweenStageAndCompile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage := newMemoryStorage(kernelTarget)
	storage.onWrite = func(path m.Path) {
		if path == kernelTarget+"/"+m.CodeFileName {
			cancel()
		}
	}

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		t.Fatal("compiler must not run after cancellation")
		return m.CompileResult{}, nil
	})

	doc := scenarioDocument()

	result, err := newTestKernel(rootedWorkspace(t), storage, compiler).ExecuteCell(ctx, doc, 1)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, m.OutcomeCancelled, result.Outcome)
	assert.Equal(t, m.Failed, doc.Cells[1].RunState())

	_, ok := storage.content(kernelTarget + "/" + m.CodeFileName)
	assert.True(t, ok, "staging completed before cancellation was observed")
}

func TestKernel_SerializesRunsPerStagingDir(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	var active, peak atomic.Int32

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		n := active.Add(1)
		defer active.Add(-1)

		for {
			current := peak.Load()
			if n <= current || peak.CompareAndSwap(current, n) {
				break
			}
		}

		time.Sleep(20 * time.Millisecond)

		return m.CompileResult{ExitCode: ExitOK}, nil
	})

	k := newTestKernel(rootedWorkspace(t), storage, compiler)

	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := k.ExecuteCell(context.Background(), scenarioDocument(), 1)
			assert.NoError(t, err)
			assert.Equal(t, m.Succeeded, result.State)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), peak.Load(), "runs sharing a staging directory must not overlap")
}

func TestKernel_LockWaitHonorsContext(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	started := make(chan struct{})
	release := make(chan struct{})

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		close(started)
		<-release

		return m.CompileResult{ExitCode: ExitOK}, nil
	})

	k := newTestKernel(rootedWorkspace(t), storage, compiler)

	done := make(chan struct{})

	go func() {
		defer close(done)

		_, err := k.ExecuteCell(context.Background(), scenarioDocument(), 1)
		assert.NoError(t, err)
	}()

	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	waiting := scenarioDocument()

	result, err := k.ExecuteCell(ctx, waiting, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, m.OutcomeCancelled, result.Outcome)
	assert.Equal(t, m.Failed, waiting.Cells[1].RunState())

	close(release)
	<-done
}

func TestKernel_CellOutOfRange(t *testing.T) {
	doc := scenarioDocument()

	k := NewKernel(adaptermocks.NewMockWorkspaceAdapter(t), NewStager(newMemoryStorage()), nil, KernelConfig{})

	_, err := k.ExecuteCell(context.Background(), doc, 2)
	require.ErrorIs(t, err, ErrCellOutOfRange)

	_, err = k.ExecuteCell(context.Background(), doc, -1)
	require.ErrorIs(t, err, ErrCellOutOfRange)

	assert.Equal(t, m.Idle, doc.Cells[0].RunState())
	assert.Equal(t, m.Idle, doc.Cells[1].RunState())
}

func TestKernel_UnimplementedOperationsDoNothing(t *testing.T) {
	doc := scenarioDocument()

	k := NewKernel(adaptermocks.NewMockWorkspaceAdapter(t), NewStager(newMemoryStorage()), nil, KernelConfig{})

	require.NoError(t, k.CancelCellExecution(context.Background(), doc, 1))
	require.NoError(t, k.ExecuteAllCells(context.Background(), doc))
	require.NoError(t, k.CancelAllCellsExecution(context.Background(), doc))

	for _, cell := range doc.Cells {
		assert.Equal(t, m.Idle, cell.RunState())
	}
}

func TestStagingDir(t *testing.T) {
	assert.Equal(t, m.Path("/work/.scratchbook/staging"), StagingDir("/work", ".scratchbook/staging"))
	assert.Equal(t, m.Path("/tmp/stage"), StagingDir("/work", "/tmp/stage"))
	assert.Equal(t, m.Path("/work"), StagingDir("/work", ""))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(wd, "proj", ".scratchbook", "staging")), StagingDir("proj", ".scratchbook/staging"))
	assert.Equal(t, m.Path(wd), StagingDir(".", ""))
}

func TestKernel_RelativeRootCompilesAbsolutePaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	target := m.Path(filepath.Join(wd, "proj", ".scratchbook", "staging"))
	storage := newMemoryStorage(target)

	workspace := adaptermocks.NewMockWorkspaceAdapter(t)
	workspace.EXPECT().ResolveRoot(mock.Anything, mock.Anything).Return(m.Path("proj"), true).Once()

	compiler := compilerFunc(func(_ context.Context, workDir m.Path, files []m.Path, _ m.CompilerOptions) (m.CompileResult, error) {
		assert.Equal(t, target, workDir)
		require.Len(t, files, 1)
		assert.True(t, filepath.IsAbs(string(files[0])), "staged file %s must not depend on the compiler's working directory", files[0])

		return m.CompileResult{ExitCode: ExitOK}, nil
	})

	result, err := newTestKernel(workspace, storage, compiler).ExecuteCell(context.Background(), scenarioDocument(), 1)
	require.NoError(t, err)

	assert.Equal(t, m.Succeeded, result.State)
	assert.Equal(t, target, result.Staged.Dir)

	_, ok := storage.content(target + "/" + m.CodeFileName)
	assert.True(t, ok)
}

func TestKernel_ConcurrentRunsOfOneCell(t *testing.T) {
	storage := newMemoryStorage(kernelTarget)

	started := make(chan struct{})
	release := make(chan struct{})

	compiler := compilerFunc(func(context.Context, m.Path, []m.Path, m.CompilerOptions) (m.CompileResult, error) {
		close(started)
		<-release

		return m.CompileResult{ExitCode: ExitOK}, nil
	})

	doc := scenarioDocument()
	k := newTestKernel(rootedWorkspace(t), storage, compiler)

	errs := make(chan error, 2)

	go func() {
		_, err := k.ExecuteCell(context.Background(), doc, 1)
		errs <- err
	}()

	<-started

	go func() {
		_, err := k.ExecuteCell(context.Background(), doc, 1)
		errs <- err
	}()

	rejected := <-errs
	require.ErrorIs(t, rejected, m.ErrInvalidTransition, "a running cell cannot start again")

	close(release)
	require.NoError(t, <-errs)

	assert.Equal(t, m.Succeeded, doc.Cells[1].RunState())
}
