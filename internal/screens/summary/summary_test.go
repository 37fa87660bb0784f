package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jhakola/vocablo/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Total:     10,
		FirstTry:  6,
		SecondTry: 2,
		ThirdTry:  1,
		Failed:    1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "90%") {
		t.Errorf("view does not show the 90%% accuracy:\n%s", view)
	}
}

func TestSummaryScreen_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: 'q'},
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		s := New(testSummary())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Errorf("expected a quit command on %q", key.String())
		}
	}
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x'})
	if cmd != nil {
		t.Error("unexpected command on an unbound key")
	}
}
