package selection

import (
	"fmt"
	"testing"

	"github.com/jhakola/vocablo/internal/catalog"
)

type stubHistory struct {
	used map[string]bool
}

func (s stubHistory) RecentlyUsedKeys(scope string, lookback int) map[string]bool {
	return s.used
}

type stubScores struct {
	scores map[string]float64
}

func (s stubScores) Score(itemKey string, dir catalog.Direction, tier string) float64 {
	return s.scores[itemKey]
}

func pool(n int) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range out {
		key := fmt.Sprintf("word-%02d", i)
		out[i] = catalog.Item{Key: key, Primary: key}
	}
	return out
}

func counts(queue []catalog.Item) map[string]int {
	out := make(map[string]int)
	for _, it := range queue {
		out[it.Key]++
	}
	return out
}

func TestSelect_ExactLength(t *testing.T) {
	e := NewSeeded(nil, nil, 1, 2)

	tests := []struct {
		poolSize int
		length   int
	}{
		{20, 10},
		{10, 10},
		{3, 10},
		{1, 5},
	}

	for _, tc := range tests {
		got := e.Select(pool(tc.poolSize), tc.length, "all", catalog.PrimaryToTarget, Options{})
		if len(got) != tc.length {
			t.Errorf("Select(pool %d, length %d) returned %d items",
				tc.poolSize, tc.length, len(got))
		}
	}
}

func TestSelect_EmptyPoolAndZeroLength(t *testing.T) {
	e := NewSeeded(nil, nil, 1, 2)

	if got := e.Select(nil, 10, "all", catalog.PrimaryToTarget, Options{}); got != nil {
		t.Errorf("Select(empty pool) = %v, want nil", got)
	}
	if got := e.Select(pool(5), 0, "all", catalog.PrimaryToTarget, Options{}); got != nil {
		t.Errorf("Select(length 0) = %v, want nil", got)
	}
}

func TestSelect_NoRepeatsWhenPoolLargeEnough(t *testing.T) {
	e := NewSeeded(nil, nil, 1, 2)

	got := e.Select(pool(20), 10, "all", catalog.PrimaryToTarget, Options{})
	for key, n := range counts(got) {
		if n > 1 {
			t.Errorf("item %q appears %d times with a pool twice the request", key, n)
		}
	}
}

func TestSelect_RefillBalancesRepeats(t *testing.T) {
	e := NewSeeded(nil, nil, 1, 2)

	// Pool of 3 for a request of 10: every item must appear at least
	// floor(10/3) = 3 times. Repeats come from whole extra cycles, not
	// from one unlucky item soaking up the slack.
	got := e.Select(pool(3), 10, "all", catalog.PrimaryToTarget, Options{})
	if len(got) != 10 {
		t.Fatalf("queue length = %d, want 10", len(got))
	}
	for key, n := range counts(got) {
		if n < 3 {
			t.Errorf("item %q appears %d times, want at least 3", key, n)
		}
	}
}

func TestSelect_PrefersFreshItems(t *testing.T) {
	p := pool(10)
	used := make(map[string]bool)
	for _, it := range p[:5] {
		used[it.Key] = true
	}
	e := NewSeeded(stubHistory{used: used}, nil, 1, 2)

	// Five fresh items fill a five-item request completely; recently
	// used ones only pad when fresh runs out.
	got := e.Select(p, 5, "all", catalog.PrimaryToTarget, Options{})
	for _, it := range got {
		if used[it.Key] {
			t.Errorf("recently used item %q selected while fresh items remained", it.Key)
		}
	}
}

func TestSelect_RecentItemsPadShortPools(t *testing.T) {
	p := pool(4)
	used := map[string]bool{"word-00": true, "word-01": true}
	e := NewSeeded(stubHistory{used: used}, nil, 1, 2)

	got := e.Select(p, 4, "all", catalog.PrimaryToTarget, Options{})
	if len(got) != 4 {
		t.Fatalf("queue length = %d, want 4", len(got))
	}
	c := counts(got)
	for _, it := range p {
		if c[it.Key] != 1 {
			t.Errorf("item %q appears %d times, want exactly 1", it.Key, c[it.Key])
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	a := NewSeeded(nil, nil, 7, 13)
	b := NewSeeded(nil, nil, 7, 13)

	qa := a.Select(pool(12), 8, "all", catalog.PrimaryToTarget, Options{})
	qb := b.Select(pool(12), 8, "all", catalog.PrimaryToTarget, Options{})

	for i := range qa {
		if qa[i].Key != qb[i].Key {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, qa[i].Key, qb[i].Key)
		}
	}
}

func TestSelect_FavorWeakPrefersLowScores(t *testing.T) {
	p := pool(10)
	scores := make(map[string]float64)
	for i, it := range p {
		if i < 5 {
			scores[it.Key] = 100 // strong
		} else {
			scores[it.Key] = 0 // weak
		}
	}

	// Weak items carry 5x the weight of mastered ones; over many seeded
	// runs they must win clearly more of the early slots.
	weakFirst := 0
	const runs = 200
	for seed := uint64(0); seed < runs; seed++ {
		e := NewSeeded(nil, stubScores{scores: scores}, seed, seed+1)
		got := e.Select(p, 10, "all", catalog.PrimaryToTarget, Options{FavorWeak: true})
		if scores[got[0].Key] == 0 {
			weakFirst++
		}
	}

	if weakFirst < runs*6/10 {
		t.Errorf("weak item led only %d/%d runs, want a clear majority", weakFirst, runs)
	}
}

func TestSelect_FavorFrequentPrefersCommonWords(t *testing.T) {
	p := pool(10)
	for i := range p {
		rank := 4900
		if i < 5 {
			rank = 10 // very common
		}
		p[i].Frequency = &catalog.FrequencyMeta{Rank: rank}
	}

	commonFirst := 0
	const runs = 200
	for seed := uint64(0); seed < runs; seed++ {
		e := NewSeeded(nil, nil, seed, seed+1)
		got := e.Select(p, 10, "all", catalog.PrimaryToTarget, Options{FavorFrequent: true})
		if got[0].Frequency.Rank == 10 {
			commonFirst++
		}
	}

	if commonFirst < runs*6/10 {
		t.Errorf("common item led only %d/%d runs, want a clear majority", commonFirst, runs)
	}
}

func TestSelect_ShortPoolCyclesEvenly(t *testing.T) {
	e := NewSeeded(nil, nil, 1, 2)

	// Pool of 4 for a request of 12: three full cycles, so every item
	// appears exactly three times.
	got := e.Select(pool(4), 12, "all", catalog.PrimaryToTarget, Options{})

	for key, n := range counts(got) {
		if n != 3 {
			t.Errorf("item %q appears %d times, want exactly 3", key, n)
		}
	}
}
