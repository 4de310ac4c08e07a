// glibc rand() in TYPE_0 mode, per glibc stdlib/random_r.c: a linear
// congruential generator with multiplier 1103515245 and increment 12345,
// reduced mod 2^31. The seed is stored verbatim, so every 32-bit seed
// names a distinct candidate (glibc's srandom additionally maps 0 to 1).

package prng

import "fmt"

// GlibcRand is the glibc TYPE_0 linear congruential generator.
type GlibcRand struct {
	state uint32
}

// NewGlibcRand creates an unseeded glibc LCG.
func NewGlibcRand() *GlibcRand {
	return &GlibcRand{}
}

// Seed sets the single-word state.
func (g *GlibcRand) Seed(seed uint32) {
	g.state = seed
}

// SetState installs the single-word raw state.
func (g *GlibcRand) SetState(state []uint32) error {
	if len(state) != 1 {
		return fmt.Errorf("prng: glibc-rand state must be 1 word, got %d", len(state))
	}
	g.state = state[0]
	return nil
}

// Next advances the LCG and returns the new 31-bit state word.
func (g *GlibcRand) Next() uint32 {
	g.state = (g.state*1103515245 + 12345) & 0x7fffffff
	return g.state
}

// MaxOutput returns the 31-bit bound.
func (g *GlibcRand) MaxOutput() uint32 { return 0x7fffffff }

// Descriptor returns the glibc-rand descriptor.
func (g *GlibcRand) Descriptor() Descriptor {
	return Descriptor{
		Name:      "glibc-rand",
		Label:     "glibc rand() TYPE_0 LCG",
		SeedBits:  32,
		StateSize: 1,
		MaxOutput: 0x7fffffff,
		CanInfer:  false,
	}
}
