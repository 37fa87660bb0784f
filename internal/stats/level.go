package stats

// Level is the estimated proficiency band, loosely aligned with CEFR.
type Level string

const (
	LevelNewcomer          Level = "newcomer"
	LevelBeginner          Level = "beginner"           // ~A1
	LevelElementary        Level = "elementary"         // ~A2
	LevelIntermediate      Level = "intermediate"       // ~B1
	LevelUpperIntermediate Level = "upper-intermediate" // ~B2
	LevelAdvanced          Level = "advanced"           // ~C1+
)

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner (A1)"
	case LevelElementary:
		return "Elementary (A2)"
	case LevelIntermediate:
		return "Intermediate (B1)"
	case LevelUpperIntermediate:
		return "Upper Intermediate (B2)"
	case LevelAdvanced:
		return "Advanced (C1+)"
	default:
		return "Newcomer"
	}
}

// estimateLevel combines average score with how deep into the
// frequency-ranked catalog the learner has reliable coverage. Both
// gates must pass: a high average over a handful of words is not a
// level, and broad shallow exposure is not either.
func estimateLevel(r Report) Level {
	if r.TotalPracticed == 0 {
		return LevelNewcomer
	}

	ratio := func(band int) float64 {
		for _, c := range r.Coverage {
			if c.Band == band && c.CatalogItems > 0 {
				return float64(c.Known) / float64(c.CatalogItems)
			}
		}
		return 0
	}

	switch {
	case r.AverageScore >= 75 && ratio(5000) >= 0.6:
		return LevelAdvanced
	case r.AverageScore >= 70 && ratio(1000) >= 0.6:
		return LevelUpperIntermediate
	case r.AverageScore >= 60 && ratio(1000) >= 0.4:
		return LevelIntermediate
	case r.AverageScore >= 50 && ratio(500) >= 0.4:
		return LevelElementary
	case r.AverageScore >= 40 && ratio(100) >= 0.3:
		return LevelBeginner
	default:
		return LevelNewcomer
	}
}
