// Package practice drives the active question/answer loop of a session.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/mastery"
	"github.com/jhakola/vocablo/internal/session"
	"github.com/jhakola/vocablo/internal/ui/components"
	"github.com/jhakola/vocablo/internal/ui/layout"
)

// feedback is what the screen shows after a submitted answer.
type feedback int

const (
	feedbackNone feedback = iota
	feedbackTryAgain
	feedbackCorrect
	feedbackFailed
)

// Screen runs one practice session.
type Screen struct {
	sess    *session.Session
	mastery *mastery.Service
	history *history.Service

	input    components.TextInput
	feedback feedback
	lastItem catalog.Item
	errMsg   string
}

// New creates the practice screen for an already-selected session.
func New(sess *session.Session, masterySvc *mastery.Service, historySvc *history.Service) *Screen {
	masterySvc.SetSessionID(sess.ID)
	return &Screen{
		sess:    sess,
		mastery: masterySvc,
		history: historySvc,
		input:   components.NewTextInput("Type your answer...", 40),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "Practice: " + s.sess.Scope
}

// Position returns the "3/10" style header fragment.
func (s *Screen) Position() string {
	done, total := s.sess.Progress()
	if done < total {
		done++
	}
	return positionLabel(done, total)
}

// KeyHints returns the footer hints for the current phase.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.feedback == feedbackCorrect || s.feedback == feedbackFailed {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon session"},
	}
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeRecordedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case sessionSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, func() tea.Msg { return DoneMsg{Summary: s.sess.Summarize()} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	// A settled item waits for any key before moving on.
	if s.feedback == feedbackCorrect || s.feedback == feedbackFailed {
		return s.advance()
	}

	switch msg.String() {
	case "enter":
		return s.submit()
	case "esc":
		// Abandoning mid-session records nothing into history; only
		// completed sessions count.
		return s, tea.Quit
	}

	s.feedback = feedbackNone
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submit() (*Screen, tea.Cmd) {
	item, ok := s.sess.Current()
	if !ok {
		return s, nil
	}
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	correct, outcome := s.sess.Submit(answer)
	s.input.Submit(correct)

	if outcome == "" {
		s.feedback = feedbackTryAgain
		return s, nil
	}

	s.lastItem = item
	if correct {
		s.feedback = feedbackCorrect
	} else {
		s.feedback = feedbackFailed
	}
	return s, s.recordOutcome(item, outcome)
}

func (s *Screen) advance() (*Screen, tea.Cmd) {
	s.feedback = feedbackNone
	s.input.Reset()

	if s.sess.Done() {
		return s, s.saveSession()
	}
	return s, nil
}

// recordOutcome persists one settled item's outcome.
func (s *Screen) recordOutcome(item catalog.Item, outcome mastery.Outcome) tea.Cmd {
	return func() tea.Msg {
		err := s.mastery.RecordAnswer(context.Background(), item.Key, s.sess.Direction, s.sess.Tier, outcome)
		return outcomeRecordedMsg{err: err}
	}
}

// saveSession records the completed session into history.
func (s *Screen) saveSession() tea.Cmd {
	return func() tea.Msg {
		err := s.history.RecordGameCompletion(context.Background(), s.sess.Scope, s.sess.Keys())
		return sessionSavedMsg{err: err}
	}
}
