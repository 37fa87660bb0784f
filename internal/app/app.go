// Package app wires the practice flow into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/mastery"
	"github.com/jhakola/vocablo/internal/screens/practice"
	"github.com/jhakola/vocablo/internal/screens/summary"
	"github.com/jhakola/vocablo/internal/session"
	"github.com/jhakola/vocablo/internal/ui/layout"
)

// Options carries the dependencies for one practice run.
type Options struct {
	Session *session.Session
	Mastery *mastery.Service
	History *history.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	practice *practice.Screen
	summary  *summary.Screen
	width    int
	height   int
}

// newAppModel creates the root model starting in the practice screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		practice: practice.New(opts.Session, opts.Mastery, opts.History),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.practice.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case practice.DoneMsg:
		m.summary = summary.New(msg.Summary)
		return m, m.summary.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.summary != nil {
		m.summary, cmd = m.summary.Update(msg)
	} else {
		m.practice, cmd = m.practice.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var (
		title    string
		position string
		hints    []layout.KeyHint
	)
	if m.summary != nil {
		title = m.summary.Title()
		hints = m.summary.KeyHints()
	} else {
		title = m.practice.Title()
		position = m.practice.Position()
		hints = m.practice.KeyHints()
	}

	header := layout.RenderHeader(title, position, m.width)
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.summary != nil {
		content = m.summary.View(m.width, contentHeight)
	} else {
		content = m.practice.View(m.width, contentHeight)
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
