package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nozzle/untwist/prng"
)

// Job describes a single brute-force search. It is immutable for the
// duration of the run.
type Job struct {
	// PRNG is the registered algorithm name.
	PRNG string
	// Observed is the sequence of observed outputs, read-only once the
	// search begins.
	Observed []uint32
	// Lower and Upper bound the candidate seed range [Lower, Upper).
	Lower, Upper uint32
	// Depth is the number of outputs generated per candidate.
	Depth int
	// Workers is the number of worker goroutines.
	Workers int
	// MinConfidence filters reported results, in (0, 100].
	MinConfidence float64
}

// Result is a candidate seed whose confidence cleared the threshold.
type Result struct {
	Seed       uint32
	Confidence float64
}

// cancelPoll is how many candidates a worker evaluates between checks of
// the cancellation flag.
const cancelPoll = 4096

// Run partitions the job's seed range across workers, scores every
// candidate and returns the merged results sorted by descending
// confidence, then ascending seed. Cancellation (via ctx or the
// monitor) is not an error; partial results are returned. The monitor
// must have one status slot per worker.
func Run(ctx context.Context, job Job, m *Monitor) ([]Result, error) {
	if len(job.Observed) == 0 {
		return nil, fmt.Errorf("search: no observed outputs")
	}
	if job.Depth < len(job.Observed) {
		return nil, fmt.Errorf("search: depth %d is smaller than the observation length %d", job.Depth, len(job.Observed))
	}
	if job.Workers < 1 {
		return nil, fmt.Errorf("search: worker count must be >= 1, got %d", job.Workers)
	}
	if m.Workers() != job.Workers {
		return nil, fmt.Errorf("search: monitor has %d slots for %d workers", m.Workers(), job.Workers)
	}
	if !prng.Supports(job.PRNG) {
		return nil, fmt.Errorf("search: unsupported algorithm %q", job.PRNG)
	}

	total := uint64(job.Upper) - uint64(job.Lower)
	chunk := (total + uint64(job.Workers) - 1) / uint64(job.Workers)

	locals := make([][]Result, job.Workers)
	var group errgroup.Group
	for w := 0; w < job.Workers; w++ {
		start := uint64(job.Lower) + uint64(w)*chunk
		end := start + chunk
		if end > uint64(job.Upper) {
			end = uint64(job.Upper)
		}
		if start >= end {
			continue
		}
		w := w
		group.Go(func() error {
			locals[w] = worker(ctx, job, m, w, start, end)
			return nil
		})
	}
	// Workers never return an error; anomalies stay local to a worker.
	_ = group.Wait()

	results := merge(locals)
	m.markCompleted()
	return results, nil
}

// worker evaluates the seeds in [start, end), owning one generator, one
// value buffer and one status slot. It appends to its own result list
// only; the lists are merged after the join barrier.
func worker(ctx context.Context, job Job, m *Monitor, slot int, start, end uint64) []Result {
	g, err := prng.New(job.PRNG)
	if err != nil {
		return nil
	}
	m.markStarted()

	var results []Result
	buf := make([]uint32, job.Depth)
	for s := start; s < end; s++ {
		g.Seed(uint32(s))
		for i := range buf {
			buf[i] = g.Next()
		}
		matched, _ := scoreValues(buf, job.Observed)
		if c := Confidence(matched, len(job.Observed)); c >= job.MinConfidence {
			results = append(results, Result{Seed: uint32(s), Confidence: c})
		}
		m.bump(slot)

		if (s-start+1)%cancelPoll == 0 {
			if m.Cancelled() {
				return results
			}
			select {
			case <-ctx.Done():
				m.Cancel()
				return results
			default:
			}
		}
	}
	return results
}

// merge deduplicates per-worker result lists and orders them
// deterministically: confidence descending, seed ascending.
func merge(locals [][]Result) []Result {
	seen := make(map[uint32]float64)
	var results []Result
	for _, local := range locals {
		for _, r := range local {
			if best, ok := seen[r.Seed]; ok {
				if r.Confidence > best {
					seen[r.Seed] = r.Confidence
				}
				continue
			}
			seen[r.Seed] = r.Confidence
			results = append(results, Result{Seed: r.Seed})
		}
	}
	for i := range results {
		results[i].Confidence = seen[results[i].Seed]
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Seed < results[j].Seed
	})
	return results
}
