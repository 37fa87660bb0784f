package session

import "github.com/jhakola/vocablo/internal/mastery"

// Summary aggregates a finished session for the end screen.
type Summary struct {
	Total     int
	FirstTry  int
	SecondTry int
	ThirdTry  int
	Failed    int
}

// Summarize buckets the session's results.
func (s *Session) Summarize() Summary {
	sum := Summary{Total: len(s.results)}
	for _, r := range s.results {
		switch r.Outcome {
		case mastery.OutcomeFirstTry:
			sum.FirstTry++
		case mastery.OutcomeSecondTry:
			sum.SecondTry++
		case mastery.OutcomeThirdTry:
			sum.ThirdTry++
		case mastery.OutcomeFailed:
			sum.Failed++
		}
	}
	return sum
}

// Correct returns how many items were eventually answered correctly.
func (s Summary) Correct() int {
	return s.FirstTry + s.SecondTry + s.ThirdTry
}

// Accuracy returns the correct share in [0, 1].
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct()) / float64(s.Total)
}
