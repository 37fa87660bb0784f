package mastery

// Canonical point table. The original app drifted between 10/5/1/1 and
// 10/3/1/0 in different game modes; this store uses a single table so
// scores stay comparable across every feature that reads them:
// strictly decreasing per extra try, zero for a failed item.
const (
	PointsFirstTry  = 10
	PointsSecondTry = 5
	PointsThirdTry  = 1
	PointsFailed    = 0

	// maxPointsPerAttempt normalizes the score against a perfect run.
	maxPointsPerAttempt = PointsFirstTry
)

// computeScore derives the 0-100 score from the outcome buckets:
// earned points over the theoretical maximum for the same number of
// attempts. Zero attempts score zero.
func computeScore(r *Record) float64 {
	if r.PracticeCount == 0 {
		return 0
	}
	earned := PointsFirstTry*r.FirstTry +
		PointsSecondTry*r.SecondTry +
		PointsThirdTry*r.ThirdTry +
		PointsFailed*r.Failed
	return 100 * float64(earned) / float64(maxPointsPerAttempt*r.PracticeCount)
}
