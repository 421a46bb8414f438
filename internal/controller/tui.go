package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// TUI implements UI for interactive terminals. Listings are printed like
// SimpleUI; a run result that does not fit the terminal opens a pager.
type TUI struct {
	*SimpleUI

	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd, FormatText),
		output:   cmd.OutOrStdout(),
	}
}

// Start records the mode the UI runs in.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = applyStartOptions(options).mode

	return nil
}

// DisplayRunResult prints short results directly and pages long ones. In
// watch mode results are always printed so the watcher is never blocked.
func (p *TUI) DisplayRunResult(ctx context.Context, location m.Path, result m.RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderRunResult(p.palette, location, result)

	model := newPagerModel(string(location), content)
	if width, height, ok := p.terminalSize(); ok {
		model = model.resize(width, height)
	}

	if p.mode == ModeWatch || !model.needsPagination() {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func (p *TUI) terminalSize() (int, int, bool) {
	f, ok := p.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

type pagerKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func defaultPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// pagerModel shows one rendered run result in a scrollable viewport.
type pagerModel struct {
	title    string
	lines    int
	keys     pagerKeyMap
	viewport viewport.Model
	height   int
}

// header and footer each take one line.
const pagerChromeHeight = 2

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(80, 20)
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		lines:    strings.Count(content, "\n"),
		keys:     defaultPagerKeyMap(),
		viewport: vp,
		height:   vp.Height + pagerChromeHeight,
	}
}

func (pm pagerModel) resize(width, height int) pagerModel {
	pm.height = height
	pm.viewport.Width = width
	pm.viewport.Height = max(height-pagerChromeHeight, 1)

	return pm
}

func (pm pagerModel) needsPagination() bool {
	return pm.lines > pm.height-pagerChromeHeight
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pm.keys.Quit):
			return pm, tea.Quit
		case key.Matches(msg, pm.keys.Top):
			pm.viewport.GotoTop()
			return pm, nil
		case key.Matches(msg, pm.keys.Bottom):
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(pm.title)
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%3.f%%  %s • %s • %s",
		pm.viewport.ScrollPercent()*100,
		pm.keys.Quit.Help().Key+" "+pm.keys.Quit.Help().Desc,
		pm.keys.Top.Help().Key+" "+pm.keys.Top.Help().Desc,
		pm.keys.Bottom.Help().Key+" "+pm.keys.Bottom.Help().Desc,
	)

	return b.String()
}
