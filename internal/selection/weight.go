package selection

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/jhakola/vocablo/internal/catalog"
)

// weightedShuffle orders items by Efraimidis-Spirakis keys: each item
// draws u in (0,1) and sorts by u^(1/weight) descending. Heavier items
// tend to sort earlier while every order stays possible, which is the
// reservoir-style bias the engine wants instead of exact
// without-replacement sampling.
func weightedShuffle(items []catalog.Item, rng *rand.Rand, weight func(catalog.Item) float64) {
	type keyed struct {
		item catalog.Item
		key  float64
	}

	keys := make([]keyed, len(items))
	for i, it := range items {
		w := weight(it)
		if w <= 0 {
			w = 1e-6
		}
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		keys[i] = keyed{item: it, key: math.Pow(u, 1/w)}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].key > keys[j].key
	})

	for i := range keys {
		items[i] = keys[i].item
	}
}

// weaknessWeight maps a 0-100 mastery score to a selection weight:
// unpracticed or failing items weigh up to 5x a fully mastered one.
func weaknessWeight(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return 1 + (100-score)/25
}

// frequencyWeight maps a corpus rank to a selection weight: rank 1
// approaches 5x, rank 5000 and beyond (or missing metadata) stays at 1.
func frequencyWeight(meta *catalog.FrequencyMeta) float64 {
	if meta == nil || meta.Rank <= 0 {
		return 1
	}
	rank := float64(meta.Rank)
	if rank > 5000 {
		rank = 5000
	}
	return 1 + 4*(1-rank/5000)
}
