// Package session holds the runtime state of one practice session: the
// selected queue, the learner's position in it, and per-item try
// tracking. Persistence happens elsewhere; this is the in-flight state
// the practice screen drives.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/mastery"
)

// MaxTries is how many attempts the learner gets per item before it
// counts as failed.
const MaxTries = 3

// Result records how one queue position went.
type Result struct {
	Item    catalog.Item
	Outcome mastery.Outcome
	Tries   int
}

// Session is the in-flight practice state.
type Session struct {
	ID        string
	Scope     string
	Direction catalog.Direction
	Tier      string

	queue   []catalog.Item
	index   int
	tries   int
	results []Result
}

// New creates a session over an already-selected queue.
func New(scope string, dir catalog.Direction, tier string, queue []catalog.Item) *Session {
	if tier == "" {
		tier = catalog.TierBasic
	}
	return &Session{
		ID:        uuid.NewString(),
		Scope:     scope,
		Direction: dir,
		Tier:      tier,
		queue:     queue,
	}
}

// Current returns the item being practiced, or false when the session
// is finished.
func (s *Session) Current() (catalog.Item, bool) {
	if s.index >= len(s.queue) {
		return catalog.Item{}, false
	}
	return s.queue[s.index], true
}

// Progress returns completed and total counts.
func (s *Session) Progress() (done, total int) {
	return s.index, len(s.queue)
}

// Done reports whether every item has been answered.
func (s *Session) Done() bool {
	return s.index >= len(s.queue)
}

// Tries returns the attempts used on the current item.
func (s *Session) Tries() int {
	return s.tries
}

// Submit checks an answer against the current item. When the item is
// settled (answered correctly or out of tries) it returns its outcome
// and advances to the next item; otherwise outcome is empty and the
// learner may try again.
func (s *Session) Submit(answer string) (correct bool, outcome mastery.Outcome) {
	item, ok := s.Current()
	if !ok {
		return false, ""
	}

	s.tries++
	correct = Matches(answer, item.Answer(s.Direction))

	switch {
	case correct:
		outcome = mastery.OutcomeForTry(s.tries)
	case s.tries >= MaxTries:
		outcome = mastery.OutcomeFailed
	default:
		return false, ""
	}

	s.results = append(s.results, Result{Item: item, Outcome: outcome, Tries: s.tries})
	s.index++
	s.tries = 0
	return correct, outcome
}

// Keys returns the queue's item keys in order, as recorded into session
// history on completion.
func (s *Session) Keys() []string {
	keys := make([]string, len(s.queue))
	for i, it := range s.queue {
		keys[i] = it.Key
	}
	return keys
}

// Results returns the per-item outcomes so far.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// accentFolder lets learners type Spanish answers without accents.
// Tildes are kept: folding ñ would equate distinct words.
var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)

// Matches compares a typed answer against the expected form:
// case-insensitive, whitespace-trimmed, accent-tolerant.
func Matches(answer, expected string) bool {
	a := normalize(answer)
	e := normalize(expected)
	if a == e {
		return true
	}
	return accentFolder.Replace(a) == accentFolder.Replace(e)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
