// Package viewer is an interactive side-by-side comparison viewer.
package viewer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/render"
	"github.com/sadopc/splitdiff/internal/ui/theme"
)

// Model displays a comparison result in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   theme.Styles

	result  diff.Result
	summary diff.Summary
	opts    render.Options
	title   string

	changes []int // first row of each block of changed rows
	current int   // index into changes, -1 before the first jump
	message string

	width  int
	height int
	ready  bool

	copy func(string) error
}

// New creates a viewer for res. opts.Width is replaced by the window width.
func New(title string, res diff.Result, opts render.Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default()
	}
	return Model{
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   theme.NewStyles(opts.Theme),
		result:   res,
		summary:  diff.Stats(res),
		opts:     opts,
		title:    title,
		changes:  changeStarts(res),
		current:  -1,
		copy:     clipboard.WriteAll,
	}
}

// changeStarts returns the first row of every run of unmatched rows.
func changeStarts(res diff.Result) []int {
	var starts []int
	prevChanged := false
	for i := range res.Left {
		changed := res.Left[i].Kind != diff.Matched || res.Right[i].Kind != diff.Matched
		if changed && !prevChanged {
			starts = append(starts, i)
		}
		prevChanged = changed
	}
	return starts
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.message = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.setSize(m.width, m.height)
			return m, nil
		case key.Matches(msg, m.keys.NextChange):
			m.jump(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevChange):
			m.jump(-1)
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.LineNumbers):
			m.opts.LineNumbers = !m.opts.LineNumbers
			m.renderContent()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyReport()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h
	// Title line, status bar and help take the remaining rows.
	chrome := 2 + lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = w
	m.viewport.Height = max(h-chrome, 1)
	m.ready = true
	m.renderContent()
}

func (m *Model) renderContent() {
	opts := m.opts
	opts.Width = m.width
	lines := render.New(opts).Lines(m.result)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// jump moves to the next (dir > 0) or previous change block.
func (m *Model) jump(dir int) {
	if len(m.changes) == 0 {
		m.message = "no differences"
		return
	}
	next := m.current + dir
	if next < 0 {
		next = len(m.changes) - 1
	}
	if next >= len(m.changes) {
		next = 0
	}
	m.current = next
	m.viewport.SetYOffset(m.changes[next])
}

// copyReport copies the uncoloured side-by-side report to the clipboard.
func (m *Model) copyReport() {
	var buf bytes.Buffer
	if err := render.Plain(&buf, m.result, max(m.width, render.DefaultWidth), m.opts.LineNumbers); err != nil {
		m.message = "copy failed: " + err.Error()
		return
	}
	if err := m.copy(buf.String()); err != nil {
		m.message = "copy failed: " + err.Error()
		return
	}
	m.message = "copied to clipboard"
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.styles.Title.Render(m.title)
	return header + "\n" + m.viewport.View() + "\n" + m.statusBar() + "\n" + m.help.View(m.keys)
}

func (m Model) statusBar() string {
	left := render.Summary(m.summary)
	if m.message != "" {
		left = m.message
	}

	pos := ""
	if len(m.changes) > 0 && m.current >= 0 {
		pos = fmt.Sprintf("change %d/%d  ", m.current+1, len(m.changes))
	}
	pos += fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(pos)-2, 1)
	return m.styles.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + pos)
}

// SetClipboard replaces the clipboard writer. Used by tests.
func (m *Model) SetClipboard(fn func(string) error) {
	m.copy = fn
}

// Run starts the viewer as a full-screen program.
func Run(title string, res diff.Result, opts render.Options) error {
	p := tea.NewProgram(
		New(title, res, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
