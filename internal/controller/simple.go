package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// palette holds the styles used for text output. Styles are bound to the
// renderer of the output writer, so plain writers get plain text.
type palette struct {
	title     lipgloss.Style
	succeeded lipgloss.Style
	failed    lipgloss.Style
	warning   lipgloss.Style
	muted     lipgloss.Style
}

func newPalette(out io.Writer) palette {
	r := lipgloss.NewRenderer(out)

	return palette{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		succeeded: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		failed:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd     *cobra.Command
	format  OutputFormat
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format OutputFormat) *SimpleUI {
	if format == "" {
		format = FormatText
	}

	return &SimpleUI{cmd: cmd, format: format, palette: newPalette(cmd.OutOrStdout())}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayCreated reports a newly written notebook.
func (s *SimpleUI) DisplayCreated(ctx context.Context, location m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(map[string]m.Path{"created": location})
	}

	return s.printf("Created notebook %s\n", location)
}

// DisplayCells prints the cells of a notebook as a table.
func (s *SimpleUI) DisplayCells(ctx context.Context, location m.Path, cells []m.CellSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(cells)
	}

	if err := s.printf("%s\n", s.palette.title.Render(string(location))); err != nil {
		return err
	}

	return s.printf("%s", renderCellsTable(cells))
}

func renderCellsTable(cells []m.CellSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Kind", "Language", "Content"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, cell := range cells {
		language := cell.Language
		if cell.Manifest {
			language += " (manifest)"
		}

		table.Append([]string{fmt.Sprintf("%d", cell.Index), cell.Kind, language, cell.Preview})
	}

	table.SetFooter([]string{"", "", "Total Cells", fmt.Sprintf("%d", len(cells))})
	table.Render()

	return tableBuffer.String()
}

// DisplayRunResult prints the outcome of a cell run and all of its diagnostics.
func (s *SimpleUI) DisplayRunResult(ctx context.Context, location m.Path, result m.RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(result)
	}

	return s.printf("%s", renderRunResult(s.palette, location, result))
}

func renderRunResult(p palette, location m.Path, result m.RunResult) string {
	var b strings.Builder

	stateStyle := p.failed
	if result.State == m.Succeeded {
		stateStyle = p.succeeded
	}

	fmt.Fprintf(&b, "%s cell %d: %s", location, result.CellIndex, stateStyle.Render(result.State.String()))

	switch result.Outcome {
	case m.OutcomeCompiled:
		fmt.Fprintf(&b, " (exit code %d, %s)\n", result.Compile.ExitCode, result.Duration.Round(time.Millisecond))
	case m.OutcomeNoOp:
		fmt.Fprintf(&b, " %s\n", p.muted.Render("(nothing staged: "+result.Reason+")"))
	default:
		fmt.Fprintf(&b, " %s\n", p.muted.Render("("+string(result.Outcome)+")"))
	}

	for _, diag := range result.Compile.Diagnostics {
		b.WriteString(renderDiagnostic(p, diag))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDiagnostic(p palette, diag m.Diagnostic) string {
	label := fmt.Sprintf("%s TS%d", diag.Category, diag.Code)

	switch diag.Category {
	case m.CategoryError:
		label = p.failed.Render(label)
	case m.CategoryWarning:
		label = p.warning.Render(label)
	default:
		label = p.muted.Render(label)
	}

	if !diag.HasLocation() {
		return label + ": " + diag.Message
	}

	return fmt.Sprintf("%s (%d,%d): %s: %s", diag.File, diag.Line, diag.Column, label, diag.Message)
}

// DisplayDiff prints a unified diff per staged file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, location m.Path, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(diffs)
	}

	var b strings.Builder

	for _, diff := range diffs {
		if !diff.Changed {
			fmt.Fprintf(&b, "%s\n", s.palette.muted.Render(diff.Name+": unchanged"))
			continue
		}

		b.WriteString(diff.Unified)

		if !strings.HasSuffix(diff.Unified, "\n") {
			b.WriteString("\n")
		}
	}

	if len(diffs) == 0 {
		fmt.Fprintf(&b, "%s has nothing to stage\n", location)
	}

	return s.printf("%s", b.String())
}

// DisplayHistory prints recent runs as a table.
func (s *SimpleUI) DisplayHistory(ctx context.Context, records []m.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(records)
	}

	if len(records) == 0 {
		return s.printf("No runs recorded\n")
	}

	return s.printf("%s", renderHistoryTable(records))
}

func renderHistoryTable(records []m.RunRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Notebook", "Cell", "State", "Exit", "Diagnostics"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, record := range records {
		id := record.ID
		if len(id) > 8 {
			id = id[:8]
		}

		table.Append([]string{
			id,
			record.StartedAt.Local().Format(time.DateTime),
			string(record.Notebook),
			fmt.Sprintf("%d", record.CellIndex),
			record.State.String(),
			fmt.Sprintf("%d", record.ExitCode),
			fmt.Sprintf("%d", len(record.Diagnostics)),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayBackup reports a written backup.
func (s *SimpleUI) DisplayBackup(ctx context.Context, location, destination m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.structured() {
		return s.encode(map[string]m.Path{"notebook": location, "backup": destination})
	}

	return s.printf("Backed up %s to %s\n", location, destination)
}

// DisplayWatching announces that a notebook is being watched.
func (s *SimpleUI) DisplayWatching(ctx context.Context, location m.Path) {
	if ctx.Err() != nil || s.structured() {
		return
	}

	_ = s.printf("%s\n", s.palette.muted.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", location)))
}

func (s *SimpleUI) structured() bool {
	return s.format == FormatJSON || s.format == FormatYAML
}

func (s *SimpleUI) encode(value any) error {
	out := s.cmd.OutOrStdout()

	if s.format == FormatYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
