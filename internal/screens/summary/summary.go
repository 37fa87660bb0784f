// Package summary renders the end-of-session results.
package summary

import (
	"fmt"
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhakola/vocablo/internal/session"
	"github.com/jhakola/vocablo/internal/ui/layout"
	"github.com/jhakola/vocablo/internal/ui/theme"
)

// Screen shows a finished session's outcome buckets.
type Screen struct {
	sum session.Summary
}

// New creates the summary screen.
func New(sum session.Summary) *Screen {
	return &Screen{sum: sum}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Session complete"
}

// KeyHints returns the footer hints.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "enter", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

// View renders the outcome buckets and overall accuracy.
func (s *Screen) View(width, height int) string {
	rows := []string{
		theme.Title.Render("Session complete!"),
		"",
		line("First try", s.sum.FirstTry, theme.Success),
		line("Second try", s.sum.SecondTry, theme.Secondary),
		line("Third try", s.sum.ThirdTry, theme.Primary),
		line("Missed", s.sum.Failed, theme.Error),
		"",
		theme.Body.Render(fmt.Sprintf("Accuracy: %.0f%%", s.sum.Accuracy()*100)),
	}

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func line(label string, count int, c color.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("%-12s %d", label, count))
}
