package model

import "time"

// RunOutcome classifies how a cell execution ended.
type RunOutcome string

const (
	// OutcomeCompiled means staging and compilation both ran.
	OutcomeCompiled RunOutcome = "compiled"
	// OutcomeNoOp means nothing was staged (no manifest cell or no workspace root).
	OutcomeNoOp RunOutcome = "noop"
	// OutcomeCancelled means the run stopped on context cancellation.
	OutcomeCancelled RunOutcome = "cancelled"
	// OutcomeError means staging or compilation failed outright.
	OutcomeError RunOutcome = "error"
)

// RunResult is what the kernel reports for one cell execution.
type RunResult struct {
	CellIndex int           `json:"cell" yaml:"cell"`
	State     RunState      `json:"state" yaml:"state"`
	Outcome   RunOutcome    `json:"outcome" yaml:"outcome"`
	Reason    string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Staged    StagedProject `json:"-" yaml:"-"`
	Compile   CompileResult `json:"compile" yaml:"compile"`
	StartedAt time.Time     `json:"startedAt" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// RunRecord is one row of run history.
type RunRecord struct {
	ID          string       `json:"id" yaml:"id"`
	Notebook    Path         `json:"notebook" yaml:"notebook"`
	CellIndex   int          `json:"cell" yaml:"cell"`
	State       RunState     `json:"state" yaml:"state"`
	Outcome     RunOutcome   `json:"outcome" yaml:"outcome"`
	ExitCode    int          `json:"exitCode" yaml:"exit_code"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	StartedAt   time.Time    `json:"startedAt" yaml:"started_at"`
	FinishedAt  time.Time    `json:"finishedAt" yaml:"finished_at"`
}

// CellSummary is one row of a notebook's cell listing.
type CellSummary struct {
	Index    int    `json:"index" yaml:"index"`
	Kind     string `json:"kind" yaml:"kind"`
	Language string `json:"language" yaml:"language"`
	Manifest bool   `json:"manifest" yaml:"manifest"`
	Preview  string `json:"preview" yaml:"preview"`
}

// FileDiff compares one staged file with the content that would be staged now.
type FileDiff struct {
	Name    string `json:"name" yaml:"name"`
	Changed bool   `json:"changed" yaml:"changed"`
	Unified string `json:"unified,omitempty" yaml:"unified,omitempty"`
}
