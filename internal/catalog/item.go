// Package catalog holds the read-only practice content: word/phrase
// pairs, their category and lesson groupings, and frequency metadata.
// The catalog is loaded once at startup and never mutated by the
// practice engine.
package catalog

// Direction selects which language is shown as the prompt and which is
// the expected answer. Mastery is tracked independently per direction.
type Direction string

const (
	// PrimaryToTarget prompts with the primary form (the language being
	// learned) and expects the target-language translation.
	PrimaryToTarget Direction = "primary_to_target"
	// TargetToPrimary prompts with the translation and expects the
	// primary form.
	TargetToPrimary Direction = "target_to_primary"
)

// ParseDirection maps a user-supplied string to a Direction.
// Unrecognized values fall back to PrimaryToTarget.
func ParseDirection(s string) Direction {
	if s == string(TargetToPrimary) {
		return TargetToPrimary
	}
	return PrimaryToTarget
}

// Tier is the difficulty/variant bucket under which mastery is tracked
// separately. Tiers are open-ended strings; TierBasic is the default.
const TierBasic = "basic"

// FrequencyMeta is per-item corpus frequency metadata. It feeds the
// statistics aggregator and the optional frequency-weighted selection
// mode; it plays no part in unweighted selection.
type FrequencyMeta struct {
	// Rank is the 1-based corpus frequency rank (1 = most common).
	Rank int `json:"rank"`
	// CEFR is the estimated CEFR band for the item ("A1".."C2").
	CEFR string `json:"cefr,omitempty"`

	Top100  bool `json:"top_100"`
	Top500  bool `json:"top_500"`
	Top1000 bool `json:"top_1000"`
	Top5000 bool `json:"top_5000"`
}

// Item is one practice entry. Items are immutable; the engine only ever
// reads them.
type Item struct {
	// Key is the stable identity, the slugged primary form. Unique
	// within the catalog.
	Key string `json:"key"`
	// Primary is the primary-language form (the word being learned).
	Primary string `json:"primary"`
	// Target is the target-language translation tested against Primary.
	Target string `json:"target"`
	// Auxiliary is an optional third-language gloss, display only.
	Auxiliary string `json:"auxiliary,omitempty"`
	// Category is the content grouping the item belongs to.
	Category string `json:"category"`

	// Frequency is nil until frequency metadata has been resolved.
	Frequency *FrequencyMeta `json:"frequency,omitempty"`
}

// Prompt returns the text shown to the learner for the given direction.
func (it Item) Prompt(dir Direction) string {
	if dir == TargetToPrimary {
		return it.Target
	}
	return it.Primary
}

// Answer returns the expected answer for the given direction.
func (it Item) Answer(dir Direction) string {
	if dir == TargetToPrimary {
		return it.Primary
	}
	return it.Target
}
