// Package untwist recovers the seed or internal state of a known
// non-cryptographic PRNG from a short sequence of observed outputs.
//
// Candidate seeds are scored by the longest contiguous run of generated
// values matching the observation, searched in parallel across a seed
// range. For algorithms whose output transform can be inverted, the full
// internal state is recovered directly from enough observations instead.
//
// Basic usage:
//
//	u, _ := untwist.New(untwist.DefaultConfig())
//	u.AddObservation(3499211612)
//	// ...
//	results, _ := u.BruteForce(ctx, 0, 100000)
package untwist

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"

	"github.com/nozzle/untwist/internal/numio"
	"github.com/nozzle/untwist/prng"
	"github.com/nozzle/untwist/search"
)

// Config configures a recovery session.
type Config struct {
	// PRNG is the algorithm name. Zero value: the first registered
	// algorithm ("mt19937").
	PRNG string

	// Depth is the number of outputs generated per candidate seed.
	// Larger depths find generators that have already been drawn from
	// many times, at linear cost. Zero value: 1000.
	Depth int

	// Workers is the brute-force worker count. Zero value: NumCPU.
	Workers int

	// MinConfidence is the reporting threshold in (0, 100]. Zero value:
	// 100.0 (exact matches only).
	MinConfidence float64

	// SampleDepth pins the discard depth used by GenerateFromSeed.
	// Zero value: a pseudo-random depth in [SampleDepthMin, SampleDepthMax).
	SampleDepth int

	// SampleDepthMin and SampleDepthMax bound the random sample depth.
	// Zero values: 500 and 1000.
	SampleDepthMin int
	SampleDepthMax int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PRNG:           prng.Names()[0],
		Depth:          1000,
		Workers:        runtime.NumCPU(),
		MinConfidence:  100.0,
		SampleDepthMin: 500,
		SampleDepthMax: 1000,
	}
}

// Untwist is the recovery controller. It accumulates observations and
// dispatches to state inference or the brute-force engine. It is not
// safe for concurrent use, except through the run monitor.
type Untwist struct {
	cfg      Config
	observed []uint32
	monitor  *search.Monitor
	inferred prng.Generator

	// sampleRand draws the sample depth. Fixed-seeded so that sample
	// generation is reproducible across runs and platforms.
	sampleRand *rand.Rand
}

// New creates a controller. Zero-valued config fields take their
// defaults; out-of-range fields are an error.
func New(cfg Config) (*Untwist, error) {
	def := DefaultConfig()
	if cfg.PRNG == "" {
		cfg.PRNG = def.PRNG
	}
	if cfg.Depth == 0 {
		cfg.Depth = def.Depth
	}
	if cfg.Workers == 0 {
		cfg.Workers = def.Workers
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = def.MinConfidence
	}
	if cfg.SampleDepthMin == 0 {
		cfg.SampleDepthMin = def.SampleDepthMin
	}
	if cfg.SampleDepthMax == 0 {
		cfg.SampleDepthMax = def.SampleDepthMax
	}

	u := &Untwist{sampleRand: rand.New(rand.NewPCG(2718281828, 3141592653))}
	if err := u.SetPRNG(cfg.PRNG); err != nil {
		return nil, err
	}
	if err := u.SetDepth(cfg.Depth); err != nil {
		return nil, err
	}
	if err := u.SetWorkers(cfg.Workers); err != nil {
		return nil, err
	}
	if err := u.SetMinConfidence(cfg.MinConfidence); err != nil {
		return nil, err
	}
	if cfg.SampleDepthMin < 1 || cfg.SampleDepthMax <= cfg.SampleDepthMin {
		return nil, fmt.Errorf("untwist: invalid sample depth range [%d, %d)", cfg.SampleDepthMin, cfg.SampleDepthMax)
	}
	u.cfg.SampleDepth = cfg.SampleDepth
	u.cfg.SampleDepthMin = cfg.SampleDepthMin
	u.cfg.SampleDepthMax = cfg.SampleDepthMax
	return u, nil
}

// SetPRNG selects the algorithm by registered name.
func (u *Untwist) SetPRNG(name string) error {
	if !prng.Supports(name) {
		return fmt.Errorf("untwist: unsupported algorithm %q", name)
	}
	u.cfg.PRNG = name
	return nil
}

// PRNG returns the selected algorithm name.
func (u *Untwist) PRNG() string { return u.cfg.PRNG }

// SetDepth sets the number of outputs inspected per candidate.
func (u *Untwist) SetDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("untwist: depth must be >= 1, got %d", depth)
	}
	u.cfg.Depth = depth
	return nil
}

// Depth returns the configured depth.
func (u *Untwist) Depth() int { return u.cfg.Depth }

// SetWorkers sets the brute-force worker count.
func (u *Untwist) SetWorkers(workers int) error {
	if workers < 1 {
		return fmt.Errorf("untwist: worker count must be >= 1, got %d", workers)
	}
	u.cfg.Workers = workers
	u.monitor = search.NewMonitor(workers)
	return nil
}

// Workers returns the configured worker count.
func (u *Untwist) Workers() int { return u.cfg.Workers }

// SetMinConfidence sets the reporting threshold in (0, 100].
func (u *Untwist) SetMinConfidence(pct float64) error {
	if pct <= 0 || pct > 100 {
		return fmt.Errorf("untwist: confidence must be in (0, 100], got %v", pct)
	}
	u.cfg.MinConfidence = pct
	return nil
}

// MinConfidence returns the reporting threshold.
func (u *Untwist) MinConfidence() float64 { return u.cfg.MinConfidence }

// AddObservation appends one observed output.
func (u *Untwist) AddObservation(v uint32) {
	u.observed = append(u.observed, v)
}

// LoadObservations appends every value read from r.
func (u *Untwist) LoadObservations(r io.Reader) error {
	values, err := numio.ReadValues(r)
	if err != nil {
		return err
	}
	u.observed = append(u.observed, values...)
	return nil
}

// Observations returns a copy of the observed outputs.
func (u *Untwist) Observations() []uint32 {
	out := make([]uint32, len(u.observed))
	copy(out, u.observed)
	return out
}

// Monitor returns the live progress and cancellation handle for the
// current or next brute-force run.
func (u *Untwist) Monitor() *search.Monitor { return u.monitor }

// BruteForce searches [lower, upper) for seeds whose output matches the
// observations with at least the configured confidence. The effective
// depth is raised to the observation length when smaller. Cancellation
// returns partial results.
func (u *Untwist) BruteForce(ctx context.Context, lower, upper uint32) ([]search.Result, error) {
	if len(u.observed) == 0 {
		return nil, fmt.Errorf("untwist: no observations loaded")
	}
	depth := u.cfg.Depth
	if depth < len(u.observed) {
		depth = len(u.observed)
	}
	if u.monitor.Completed() || u.monitor.Cancelled() {
		u.monitor = search.NewMonitor(u.cfg.Workers)
	}
	job := search.Job{
		PRNG:          u.cfg.PRNG,
		Observed:      u.Observations(),
		Lower:         lower,
		Upper:         upper,
		Depth:         depth,
		Workers:       u.cfg.Workers,
		MinConfidence: u.cfg.MinConfidence,
	}
	return search.Run(ctx, job, u.monitor)
}

// InferState attempts to recover the generator's internal state
// directly from the observations. It returns false when the algorithm
// has no inverter or there are too few observations; the caller may
// fall back to brute force. A verification mismatch also returns false,
// with the mismatch as the error.
func (u *Untwist) InferState() (bool, error) {
	g, err := prng.New(u.cfg.PRNG)
	if err != nil {
		return false, err
	}
	inferrer, ok := g.(prng.StateInferrer)
	if !ok {
		return false, nil
	}
	if len(u.observed) < g.Descriptor().StateSize {
		return false, nil
	}
	if err := inferrer.InferState(u.observed); err != nil {
		return false, err
	}
	u.inferred = g
	return true, nil
}

// InferredState returns the recovered raw state after a successful
// InferState, or nil.
func (u *Untwist) InferredState() []uint32 {
	type stater interface{ State() []uint32 }
	if s, ok := u.inferred.(stater); ok {
		return s.State()
	}
	return nil
}

// GenerateFromSeed seeds a fresh generator, discards outputs down to a
// sample depth, and emits n values. The depth is pseudo-random within
// the configured range unless pinned by Config.SampleDepth, so repeated
// captures land at different stream positions.
func (u *Untwist) GenerateFromSeed(seed uint32, n int) []uint32 {
	g, err := prng.New(u.cfg.PRNG)
	if err != nil {
		return nil
	}
	g.Seed(seed)

	depth := u.cfg.SampleDepth
	if depth == 0 {
		depth = u.cfg.SampleDepthMin + u.sampleRand.IntN(u.cfg.SampleDepthMax-u.cfg.SampleDepthMin)
	}
	for ; depth > n; depth-- {
		g.Next()
	}

	out := make([]uint32, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// GenerateFromState emits the next n outputs of the generator recovered
// by InferState.
func (u *Untwist) GenerateFromState(n int) ([]uint32, error) {
	if u.inferred == nil {
		return nil, fmt.Errorf("untwist: no inferred state; run InferState first")
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = u.inferred.Next()
	}
	return out, nil
}
