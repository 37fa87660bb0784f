// Package selection builds the ordered item queue for a practice
// session: fresh items ahead of recently used ones, optionally biased
// toward weak or frequent vocabulary, padded by reshuffled refill
// cycles when the pool is smaller than the request, and spaced so
// repeats never cluster.
package selection

import (
	"math/rand/v2"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/spacing"
)

// Options toggles the optional selection behaviors.
type Options struct {
	// FavorWeak biases ordering so items with a lower mastery score are
	// more likely to appear earlier.
	FavorWeak bool
	// FavorFrequent biases ordering toward more common items (better
	// frequency rank).
	FavorFrequent bool
	// Tier is the mastery tier consulted for FavorWeak. Empty means
	// the basic tier.
	Tier string
	// Lookback overrides the recent-session window (0 = default).
	Lookback int
	// MinDistance overrides the duplicate spacing distance (0 = default).
	MinDistance int
}

// HistoryReader is the slice of the history store the engine needs.
type HistoryReader interface {
	RecentlyUsedKeys(scope string, lookback int) map[string]bool
}

// ScoreReader is the slice of the mastery store the engine needs.
type ScoreReader interface {
	Score(itemKey string, dir catalog.Direction, tier string) float64
}

// Engine selects session queues. It only reads the stores it is given.
type Engine struct {
	history HistoryReader
	scores  ScoreReader
	rng     *rand.Rand
}

// New creates an engine with a randomly seeded generator. Either reader
// may be nil: no history means everything counts as fresh, no scores
// disables mastery weighting.
func New(hist HistoryReader, scores ScoreReader) *Engine {
	return NewSeeded(hist, scores, rand.Uint64(), rand.Uint64())
}

// NewSeeded creates an engine with a deterministic generator, used by
// tests that assert distribution properties.
func NewSeeded(hist HistoryReader, scores ScoreReader, seed1, seed2 uint64) *Engine {
	return &Engine{
		history: hist,
		scores:  scores,
		rng:     rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Select produces the ordered queue for the next session: exactly
// length items drawn from pool, or an empty queue when pool is empty or
// length is zero (an upstream configuration error, not a failure here).
// Items repeat only when the pool itself is smaller than the request.
func (e *Engine) Select(pool []catalog.Item, length int, scope string, dir catalog.Direction, opts Options) []catalog.Item {
	if len(pool) == 0 || length <= 0 {
		return nil
	}

	lookback := opts.Lookback
	if lookback <= 0 {
		lookback = history.DefaultLookback
	}

	var used map[string]bool
	if e.history != nil {
		used = e.history.RecentlyUsedKeys(scope, lookback)
	}

	var fresh, recent []catalog.Item
	for _, it := range pool {
		if used[it.Key] {
			recent = append(recent, it)
		} else {
			fresh = append(fresh, it)
		}
	}

	// Each refill cycle regenerates a new random order; a short pool
	// repeats the cycle, never a fixed order.
	queue := make([]catalog.Item, 0, length)
	for len(queue) < length {
		queue = append(queue, e.cycle(fresh, recent, dir, opts)...)
	}
	queue = queue[:length]

	minDistance := opts.MinDistance
	if minDistance <= 0 {
		minDistance = spacing.DefaultMinDistance
	}
	return spacing.Space(queue, minDistance)
}

// cycle returns one full pass over the pool: shuffled fresh items
// first, shuffled recent items as fallback filler.
func (e *Engine) cycle(fresh, recent []catalog.Item, dir catalog.Direction, opts Options) []catalog.Item {
	out := make([]catalog.Item, 0, len(fresh)+len(recent))
	out = append(out, e.order(fresh, dir, opts)...)
	out = append(out, e.order(recent, dir, opts)...)
	return out
}

// order shuffles items uniformly, or by weighted keys when a weighting
// toggle is on.
func (e *Engine) order(items []catalog.Item, dir catalog.Direction, opts Options) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)

	if opts.FavorWeak || opts.FavorFrequent {
		weightedShuffle(out, e.rng, e.weigher(dir, opts))
		return out
	}

	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// weigher builds the per-item weight function for the enabled toggles.
func (e *Engine) weigher(dir catalog.Direction, opts Options) func(catalog.Item) float64 {
	tier := opts.Tier
	if tier == "" {
		tier = catalog.TierBasic
	}
	return func(it catalog.Item) float64 {
		w := 1.0
		if opts.FavorWeak && e.scores != nil {
			w *= weaknessWeight(e.scores.Score(it.Key, dir, tier))
		}
		if opts.FavorFrequent {
			w *= frequencyWeight(it.Frequency)
		}
		return w
	}
}
