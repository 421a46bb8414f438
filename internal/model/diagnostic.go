package model

import "fmt"

// DiagnosticCategory mirrors the compiler's severity scale.
type DiagnosticCategory int

// Categories in the order the TypeScript compiler numbers them.
const (
	CategoryWarning DiagnosticCategory = iota
	CategoryError
	CategorySuggestion
	CategoryMessage
)

func (c DiagnosticCategory) String() string {
	switch c {
	case CategoryWarning:
		return "warning"
	case CategoryError:
		return "error"
	case CategorySuggestion:
		return "suggestion"
	case CategoryMessage:
		return "message"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText renders the category by name in reports.
func (c DiagnosticCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name as produced by MarshalText.
func (c *DiagnosticCategory) UnmarshalText(text []byte) error {
	for _, candidate := range []DiagnosticCategory{CategoryWarning, CategoryError, CategorySuggestion, CategoryMessage} {
		if candidate.String() == string(text) {
			*c = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown diagnostic category %q", text)
}

// Diagnostic is one compiler-reported issue.
//
// File, Line and Column are set together; a diagnostic without a file only
// carries its message.
type Diagnostic struct {
	File     Path               `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int                `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int                `json:"column,omitempty" yaml:"column,omitempty"`
	Message  string             `json:"message" yaml:"message"`
	Category DiagnosticCategory `json:"category" yaml:"category"`
	Code     int                `json:"code,omitempty" yaml:"code,omitempty"`
}

// HasLocation reports whether the diagnostic points into a file.
func (d Diagnostic) HasLocation() bool {
	return d.File != ""
}

// String renders the diagnostic as "file (line,column): message".
func (d Diagnostic) String() string {
	if !d.HasLocation() {
		return d.Message
	}

	return fmt.Sprintf("%s (%d,%d): %s", d.File, d.Line, d.Column, d.Message)
}

// MessageChain is a structured compiler message with nested details.
type MessageChain struct {
	Text string         `json:"text"`
	Next []MessageChain `json:"next,omitempty"`
}

// RawDiagnostic is a diagnostic as reported by the compiler oracle, before
// positions are resolved. Start is a 0-based offset in UTF-16 code units.
type RawDiagnostic struct {
	File     Path               `json:"file,omitempty"`
	Start    *int               `json:"start,omitempty"`
	Category DiagnosticCategory `json:"category"`
	Code     int                `json:"code"`
	Message  MessageChain       `json:"message"`
}

// CheckOutput is everything the compiler oracle reports for one program.
type CheckOutput struct {
	EmitSkipped bool            `json:"emitSkipped"`
	PreEmit     []RawDiagnostic `json:"preEmit"`
	Emit        []RawDiagnostic `json:"emit"`
}

// CompilerOptions configures one compilation.
type CompilerOptions struct {
	NoEmitOnError bool   `json:"noEmitOnError" yaml:"no_emit_on_error"`
	NoImplicitAny bool   `json:"noImplicitAny" yaml:"no_implicit_any"`
	Target        string `json:"target" yaml:"target"`
	Module        string `json:"module" yaml:"module"`
}

// DefaultCompilerOptions returns the options used when nothing is configured.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		NoEmitOnError: true,
		NoImplicitAny: true,
		Target:        "ES5",
		Module:        "CommonJS",
	}
}

// CompileResult is what a compilation returns instead of exiting the process.
type CompileResult struct {
	ExitCode    int          `json:"exitCode" yaml:"exit_code"`
	EmitSkipped bool         `json:"emitSkipped" yaml:"emit_skipped"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}
