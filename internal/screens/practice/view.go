package practice

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/session"
	"github.com/jhakola/vocablo/internal/ui/components"
	"github.com/jhakola/vocablo/internal/ui/theme"
)

// View renders the current question or feedback.
func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height,
			theme.Wrong.Render("Something went wrong")+"\n\n"+
				theme.Body.Render(s.errMsg))
	}

	item, ok := s.sess.Current()
	if !ok {
		item = s.lastItem
	}

	done, total := s.sess.Progress()
	bar := components.NewProgressBar("", float64(done)/float64(max(total, 1)), false, 40).View()

	prompt := theme.Title.Render(item.Prompt(s.sess.Direction))

	var body string
	switch s.feedback {
	case feedbackCorrect:
		body = theme.Correct.Render("Correct!") + auxiliaryLine(s.lastItem)
	case feedbackFailed:
		body = theme.Wrong.Render("The answer was: "+s.lastItem.Answer(s.sess.Direction)) +
			auxiliaryLine(s.lastItem)
	case feedbackTryAgain:
		tries := session.MaxTries - s.sess.Tries()
		body = theme.Hint.Render(fmt.Sprintf("Not quite -- %d %s left", tries, plural(tries, "try", "tries"))) +
			"\n\n" + s.input.View()
	default:
		body = s.input.View()
	}

	card := theme.Card.Render(prompt + "\n\n" + body)

	return centered(width, height, bar+"\n\n"+card)
}

// auxiliaryLine shows the third-language gloss once an item is settled.
func auxiliaryLine(item catalog.Item) string {
	if item.Auxiliary == "" {
		return ""
	}
	return "\n" + theme.Hint.Render("("+item.Auxiliary+")")
}

func positionLabel(current, total int) string {
	return fmt.Sprintf("%d/%d", current, total)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
