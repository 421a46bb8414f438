package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf16"

	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// Exit codes reported by Compile.
const (
	ExitOK          = 0
	ExitEmitSkipped = 1
)

// Compiler type-checks and emits staged files and reports diagnostics with
// resolved positions. It returns a result instead of exiting.
type Compiler interface {
	Compile(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CompileResult, error)
}

type compiler struct {
	typescript adapter.TypeScriptAdapter
	storage    adapter.StorageAdapter
}

// NewCompiler constructs a Compiler that queries typescript and reads source
// text through storage to resolve positions.
func NewCompiler(typescript adapter.TypeScriptAdapter, storage adapter.StorageAdapter) Compiler {
	return &compiler{typescript: typescript, storage: storage}
}

func (c *compiler) Compile(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CompileResult, error) {
	output, err := c.typescript.Check(ctx, workDir, files, options)
	if err != nil {
		slog.Error("Compiler invocation failed", "files", files, "error", err)
		return m.CompileResult{}, fmt.Errorf("compile: %w", err)
	}

	raw := make([]m.RawDiagnostic, 0, len(output.PreEmit)+len(output.Emit))
	raw = append(raw, output.PreEmit...)
	raw = append(raw, output.Emit...)

	indexes := map[m.Path]*lineIndex{}
	diagnostics := make([]m.Diagnostic, 0, len(raw))

	for _, rd := range raw {
		diagnostics = append(diagnostics, c.resolve(ctx, rd, indexes))
	}

	result := m.CompileResult{
		ExitCode:    ExitOK,
		EmitSkipped: output.EmitSkipped,
		Diagnostics: diagnostics,
	}

	if output.EmitSkipped {
		result.ExitCode = ExitEmitSkipped
	}

	slog.Debug("Compiled", "files", files, "diagnostics", len(diagnostics), "exitCode", result.ExitCode)

	return result, nil
}

func (c *compiler) resolve(ctx context.Context, rd m.RawDiagnostic, indexes map[m.Path]*lineIndex) m.Diagnostic {
	diag := m.Diagnostic{
		Message:  FlattenMessage(rd.Message),
		Category: rd.Category,
		Code:     rd.Code,
	}

	if rd.File == "" || rd.Start == nil {
		return diag
	}

	index, ok := indexes[rd.File]
	if !ok {
		text, err := c.storage.ReadFile(ctx, rd.File)
		if err != nil {
			slog.Error("Failed to read diagnostic source", "file", rd.File, "error", err)

			index = nil
		} else {
			index = newLineIndex(string(text))
		}

		indexes[rd.File] = index
	}

	if index == nil {
		return diag
	}

	diag.File = rd.File
	diag.Line, diag.Column = index.position(*rd.Start)

	return diag
}

// FlattenMessage joins a message chain with newlines, indenting each nested
// level by two spaces.
func FlattenMessage(chain m.MessageChain) string {
	var b strings.Builder

	flattenInto(&b, chain, 0)

	return b.String()
}

func flattenInto(b *strings.Builder, chain m.MessageChain, indent int) {
	if indent > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", indent))
	}

	b.WriteString(chain.Text)

	for _, next := range chain.Next {
		flattenInto(b, next, indent+1)
	}
}

// lineIndex maps 0-based UTF-16 offsets to 1-based line and column pairs.
type lineIndex struct {
	starts []int
	length int
}

func newLineIndex(text string) *lineIndex {
	units := utf16.Encode([]rune(text))
	starts := []int{0}

	for i := 0; i < len(units); i++ {
		switch units[i] {
		case '\r':
			if i+1 < len(units) && units[i+1] == '\n' {
				i++
			}

			starts = append(starts, i+1)
		case '\n', 0x2028, 0x2029:
			starts = append(starts, i+1)
		}
	}

	return &lineIndex{starts: starts, length: len(units)}
}

func (li *lineIndex) position(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	if offset > li.length {
		offset = li.length
	}

	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1

	return line + 1, offset - li.starts[line] + 1
}
