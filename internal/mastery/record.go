// Package mastery owns the persisted per-item practice outcomes and the
// derived 0-100 proficiency scores. One record exists per
// (item key, direction, tier) triple, created lazily on the first
// recorded attempt.
package mastery

import "time"

// Outcome is the result bucket of one practice attempt.
type Outcome string

const (
	OutcomeFirstTry  Outcome = "first_try"
	OutcomeSecondTry Outcome = "second_try"
	OutcomeThirdTry  Outcome = "third_try"
	OutcomeFailed    Outcome = "failed"
)

// Valid reports whether o is one of the four outcome buckets.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeFirstTry, OutcomeSecondTry, OutcomeThirdTry, OutcomeFailed:
		return true
	}
	return false
}

// OutcomeForTry maps the try number on which the learner answered
// correctly (1-3) to an outcome. Any other value means the item was
// failed.
func OutcomeForTry(try int) Outcome {
	switch try {
	case 1:
		return OutcomeFirstTry
	case 2:
		return OutcomeSecondTry
	case 3:
		return OutcomeThirdTry
	}
	return OutcomeFailed
}

// Record tracks practice outcomes for one (item, direction, tier).
// Invariant: FirstTry+SecondTry+ThirdTry+Failed == PracticeCount.
type Record struct {
	PracticeCount   int       `json:"practice_count"`
	FirstTry        int       `json:"first_try"`
	SecondTry       int       `json:"second_try"`
	ThirdTry        int       `json:"third_try"`
	Failed          int       `json:"failed"`
	Score           float64   `json:"score"`
	LastPracticedAt time.Time `json:"last_practiced_at"`
}

// consistent reports whether the outcome buckets sum to PracticeCount.
func (r *Record) consistent() bool {
	return r.FirstTry+r.SecondTry+r.ThirdTry+r.Failed == r.PracticeCount
}

// apply records one attempt outcome and recomputes the score.
func (r *Record) apply(outcome Outcome, at time.Time) {
	r.PracticeCount++
	switch outcome {
	case OutcomeFirstTry:
		r.FirstTry++
	case OutcomeSecondTry:
		r.SecondTry++
	case OutcomeThirdTry:
		r.ThirdTry++
	default:
		r.Failed++
	}
	r.LastPracticedAt = at
	r.Score = computeScore(r)
}
