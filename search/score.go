// Package search implements the parallel brute-force seed search: a
// scorer that measures how well a candidate generator reproduces the
// observed outputs, a monitor holding the shared run state, the worker
// pool engine, and a terminal progress reporter.
package search

import "github.com/nozzle/untwist/prng"

// Score drives g for depth outputs and slides the observation window
// over them, returning the length of the longest contiguous prefix match
// and the offset at which it occurred. Ties resolve to the lowest
// offset. depth must be >= len(observed); callers enforce it.
func Score(g prng.Generator, observed []uint32, depth int) (matched, offset int) {
	values := make([]uint32, depth)
	for i := range values {
		values[i] = g.Next()
	}
	return scoreValues(values, observed)
}

// scoreValues is the allocation-free core of Score; the engine reuses a
// per-worker value buffer across candidates.
func scoreValues(values, observed []uint32) (matched, offset int) {
	for k := 0; k+len(observed) <= len(values); k++ {
		var p int
		for p < len(observed) && values[k+p] == observed[p] {
			p++
		}
		if p > matched {
			matched = p
			offset = k
		}
		if matched == len(observed) {
			break
		}
	}
	return matched, offset
}

// Confidence converts a match length into the reported percentage.
func Confidence(matched, observedLen int) float64 {
	if observedLen == 0 {
		return 0
	}
	return float64(matched) / float64(observedLen) * 100.0
}
