package search

import "sync/atomic"

// Monitor holds the shared state of a single search run: the started,
// completed and cancelled flags and the per-worker progress counters.
// Each counter slot is written by exactly one worker and read by the
// progress reporter; the flags are single-bit signals, so no memory is
// published through them.
type Monitor struct {
	started   atomic.Bool
	completed atomic.Bool
	cancelled atomic.Bool
	status    []atomic.Uint32
}

// NewMonitor creates a monitor with one status slot per worker.
func NewMonitor(workers int) *Monitor {
	return &Monitor{status: make([]atomic.Uint32, workers)}
}

// Started reports whether any worker has begun evaluating candidates.
func (m *Monitor) Started() bool { return m.started.Load() }

// Completed reports whether the run has finished (all workers joined or
// cancelled).
func (m *Monitor) Completed() bool { return m.completed.Load() }

// Cancelled reports whether a cancellation has been requested.
func (m *Monitor) Cancelled() bool { return m.cancelled.Load() }

// Cancel requests a cooperative stop. Workers observe the flag at coarse
// granularity and return any results found so far.
func (m *Monitor) Cancel() { m.cancelled.Store(true) }

// Sum returns the aggregate number of candidates evaluated so far. The
// sum is monotonic and bounded by the size of the searched range.
func (m *Monitor) Sum() uint64 {
	var sum uint64
	for i := range m.status {
		sum += uint64(m.status[i].Load())
	}
	return sum
}

// Workers returns the number of status slots.
func (m *Monitor) Workers() int { return len(m.status) }

func (m *Monitor) markStarted()   { m.started.Store(true) }
func (m *Monitor) markCompleted() { m.completed.Store(true) }

func (m *Monitor) bump(slot int) { m.status[slot].Add(1) }
