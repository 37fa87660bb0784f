package practice

import "github.com/jhakola/vocablo/internal/session"

// outcomeRecordedMsg reports the persistence result of one settled item.
type outcomeRecordedMsg struct {
	err error
}

// sessionSavedMsg reports that the completed session was written to
// history.
type sessionSavedMsg struct {
	err error
}

// DoneMsg tells the root model the session is over.
type DoneMsg struct {
	Summary session.Summary
}
