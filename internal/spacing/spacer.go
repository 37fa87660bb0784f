// Package spacing spreads repeated items apart inside a generated
// session queue. It is a local repair pass over the selection engine's
// output, not a re-shuffle, so the engine's intended ordering survives
// wherever the spacing constraint allows it.
package spacing

import (
	"sort"

	"github.com/jhakola/vocablo/internal/catalog"
)

// DefaultMinDistance is the spacing applied to session queues: equal
// items end up at least this many positions apart when achievable.
const DefaultMinDistance = 3

// Space reorders sequence so that every pair of equal items (by key) is
// at least minDistance positions apart whenever the multiset allows it.
// Where no valid position exists the violation is accepted; the pass
// always terminates and never changes the multiset. The input slice is
// not modified.
func Space(sequence []catalog.Item, minDistance int) []catalog.Item {
	out := make([]catalog.Item, len(sequence))
	copy(out, sequence)

	if minDistance <= 1 || len(out) < 3 {
		return out
	}

	index := buildIndex(out)

	// Repair keys in first-occurrence order for determinism.
	for _, key := range keysInOrder(out) {
		occ := index[key]
		if len(occ) < 2 {
			continue
		}

		fixed := []int{occ[0]}
		pending := append([]int(nil), occ[1:]...)

		for len(pending) > 0 {
			pos := pending[0]
			pending = pending[1:]

			if spacedFrom(fixed, pos, minDistance) {
				fixed = append(fixed, pos)
				continue
			}

			target := findSlot(out, index, key, fixed, pos, minDistance)
			if target < 0 {
				// No valid forward position; accept the violation.
				fixed = append(fixed, pos)
				continue
			}

			other := out[target].Key
			out[pos], out[target] = out[target], out[pos]
			index[key] = replacePosition(index[key], pos, target)
			index[other] = replacePosition(index[other], target, pos)
			fixed = append(fixed, target)
		}
	}

	return out
}

// findSlot searches forward from the furthest fixed occurrence for the
// nearest position whose occupant can swap with pos without creating a
// new violation for either key.
func findSlot(out []catalog.Item, index map[string][]int, key string, fixed []int, pos, minDistance int) int {
	start := maxPosition(fixed) + minDistance
	if start < 0 {
		start = 0
	}
	for c := start; c < len(out); c++ {
		occupant := out[c].Key
		if occupant == key {
			continue
		}
		if !spacedFrom(fixed, c, minDistance) {
			continue
		}
		// The occupant moves to pos; it must stay clear of its own
		// other occurrences.
		ok := true
		for _, q := range index[occupant] {
			if q == c {
				continue
			}
			if abs(pos-q) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			return c
		}
	}
	return -1
}

func buildIndex(items []catalog.Item) map[string][]int {
	index := make(map[string][]int)
	for i, it := range items {
		index[it.Key] = append(index[it.Key], i)
	}
	return index
}

func keysInOrder(items []catalog.Item) []string {
	seen := make(map[string]bool, len(items))
	var keys []string
	for _, it := range items {
		if !seen[it.Key] {
			seen[it.Key] = true
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// spacedFrom reports whether pos is at least minDistance away from
// every position in fixed.
func spacedFrom(fixed []int, pos, minDistance int) bool {
	for _, f := range fixed {
		if abs(pos-f) < minDistance {
			return false
		}
	}
	return true
}

// replacePosition swaps old for repl in a position list, keeping it
// sorted so later occupant checks see current positions.
func replacePosition(positions []int, old, repl int) []int {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if p == old {
			out = append(out, repl)
		} else {
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

func maxPosition(positions []int) int {
	m := positions[0]
	for _, p := range positions[1:] {
		if p > m {
			m = p
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
