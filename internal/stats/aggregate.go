// Package stats derives aggregate proficiency figures from the mastery
// store and the catalog's frequency metadata: counts, average score,
// frequency-band coverage, an estimated level, and milestone progress.
package stats

import (
	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/mastery"
)

// Score thresholds for classifying practiced items.
const (
	KnownThreshold     = 60.0
	MasteredThreshold  = 85.0
	ReinforceThreshold = 40.0
)

// Frequency bands reported for coverage, most common first.
var CoverageBands = []int{100, 500, 1000, 5000}

// BandCoverage reports how much of one frequency band the learner has
// reliable coverage of.
type BandCoverage struct {
	// Band is the rank cutoff (items within the top-Band most common).
	Band int
	// CatalogItems is how many catalog items fall inside the band.
	CatalogItems int
	// Known is how many of those the learner knows.
	Known int
}

// Report is the aggregate proficiency view rendered by progress
// features.
type Report struct {
	TotalPracticed     int
	Known              int
	Mastered           int
	NeedsReinforcement int
	AverageScore       float64
	Coverage           []BandCoverage
	Level              Level
	NextMilestone      Milestone
}

// Aggregate computes the report from a mastery document snapshot and
// the catalog. A learner with no practice gets an all-zero report with
// the first milestone, never an error.
func Aggregate(doc mastery.Document, cat *catalog.Catalog) Report {
	scores := itemScores(doc)

	report := Report{
		TotalPracticed: len(scores),
	}

	var sum float64
	for _, score := range scores {
		sum += score
		switch {
		case score >= MasteredThreshold:
			report.Mastered++
			report.Known++
		case score >= KnownThreshold:
			report.Known++
		case score < ReinforceThreshold:
			report.NeedsReinforcement++
		}
	}
	if report.TotalPracticed > 0 {
		report.AverageScore = sum / float64(report.TotalPracticed)
	}

	report.Coverage = bandCoverage(scores, cat)
	report.Level = estimateLevel(report)
	report.NextMilestone = nextMilestone(report)
	return report
}

// itemScores flattens the document to one score per item: the mean over
// every (direction, tier) the item has been practiced under, so knowing
// a word only one way does not count as knowing it outright.
func itemScores(doc mastery.Document) map[string]float64 {
	out := make(map[string]float64)
	for key, byDir := range doc.Items {
		var sum float64
		var n int
		for _, byTier := range byDir {
			for _, rec := range byTier {
				if rec.PracticeCount == 0 {
					continue
				}
				sum += rec.Score
				n++
			}
		}
		if n > 0 {
			out[key] = sum / float64(n)
		}
	}
	return out
}

// bandCoverage counts known items inside each frequency band.
func bandCoverage(scores map[string]float64, cat *catalog.Catalog) []BandCoverage {
	out := make([]BandCoverage, len(CoverageBands))
	for i, band := range CoverageBands {
		out[i] = BandCoverage{Band: band}
	}

	for _, it := range cat.All() {
		if it.Frequency == nil || it.Frequency.Rank <= 0 {
			continue
		}
		known := scores[it.Key] >= KnownThreshold
		for i, band := range CoverageBands {
			if it.Frequency.Rank <= band {
				out[i].CatalogItems++
				if known {
					out[i].Known++
				}
			}
		}
	}
	return out
}
