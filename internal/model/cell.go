// Package model defines the data structures for notebook documents and runs.
package model

import (
	"errors"
	"fmt"
)

// CellKind distinguishes commentary cells from cells that can be executed.
type CellKind int

const (
	// Markup cells hold commentary and are never executed.
	Markup CellKind = iota
	// Executable cells hold manifest or source text.
	Executable
)

func (k CellKind) String() string {
	switch k {
	case Markup:
		return "markup"
	case Executable:
		return "executable"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// RunState is the execution indicator of a single cell.
type RunState int

const (
	// Idle is the state of every freshly loaded cell.
	Idle RunState = iota
	// Running is entered as soon as execution is requested.
	Running
	// Succeeded means staging and compilation completed with output emitted.
	Succeeded
	// Failed means the run ended without emitted output.
	Failed
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// MarshalText renders the state by name in reports.
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name as produced by MarshalText.
func (s *RunState) UnmarshalText(text []byte) error {
	state, err := ParseRunState(string(text))
	if err != nil {
		return err
	}

	*s = state

	return nil
}

// ParseRunState maps a state name back to its RunState.
func ParseRunState(name string) (RunState, error) {
	for _, state := range []RunState{Idle, Running, Succeeded, Failed} {
		if state.String() == name {
			return state, nil
		}
	}

	return Idle, fmt.Errorf("unknown run state %q", name)
}

// Terminal reports whether the state ends a run.
func (s RunState) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Languages known to the notebook.
const (
	LanguageManifest   = "json"
	LanguageTypeScript = "typescript"
	LanguageMarkdown   = "markdown"
)

// Cell is one unit of notebook content.
type Cell struct {
	Kind     CellKind
	Language string
	Content  string

	state RunState
}

// NewCell builds an idle cell.
func NewCell(kind CellKind, language, content string) Cell {
	return Cell{Kind: kind, Language: language, Content: content}
}

// RunState returns the current execution indicator of the cell.
func (c Cell) RunState() RunState {
	return c.state
}

// IsManifest reports whether the cell carries the package manifest.
func (c Cell) IsManifest() bool {
	return c.Language == LanguageManifest
}

// ErrInvalidTransition is returned by Transition for moves the state machine does not allow.
var ErrInvalidTransition = errors.New("invalid run state transition")

var allowedTransitions = map[RunState][]RunState{
	Idle:      {Running},
	Running:   {Succeeded, Failed},
	Succeeded: {Running},
	Failed:    {Running},
}

// Transition returns a copy of cell moved to next.
//
// It is the only way to change a cell's run state and is meant to be called
// by the kernel alone.
func Transition(cell Cell, next RunState) (Cell, error) {
	for _, allowed := range allowedTransitions[cell.state] {
		if allowed == next {
			cell.state = next
			return cell, nil
		}
	}

	return cell, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cell.state, next)
}
