// MT19937 as defined by Matsumoto and Nishimura, "Mersenne Twister: a
// 623-dimensionally equidistributed uniform pseudo-random number
// generator" (1998). Reference implementation: mt19937ar.c,
// init_genrand / genrand_int32.

package prng

import "fmt"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 is the classic 32-bit Mersenne Twister.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates an unseeded Mersenne Twister. Callers must Seed,
// SetState, or InferState before drawing outputs.
func NewMT19937() *MT19937 {
	return &MT19937{mti: mtN}
}

// Seed initializes the state with the 1812433253 recurrence from
// init_genrand.
func (g *MT19937) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < mtN; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = mtN
}

// SetState installs a raw 624-word state. The next call to Next
// regenerates a block, so the words must be untempered block values.
func (g *MT19937) SetState(state []uint32) error {
	if len(state) != mtN {
		return fmt.Errorf("prng: mt19937 state must be %d words, got %d", mtN, len(state))
	}
	copy(g.mt[:], state)
	g.mti = mtN
	return nil
}

// State returns a copy of the current 624-word state.
func (g *MT19937) State() []uint32 {
	state := make([]uint32, mtN)
	copy(state, g.mt[:])
	return state
}

// Next returns the next tempered 32-bit output.
func (g *MT19937) Next() uint32 {
	if g.mti >= mtN {
		g.generate()
	}
	y := g.mt[g.mti]
	g.mti++
	return temper(y)
}

// generate produces the next block of N words.
func (g *MT19937) generate() {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (g.mt[mtN-1] & upperMask) | (g.mt[0] & lowerMask)
	g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	g.mti = 0
}

// MaxOutput returns the full 32-bit bound.
func (g *MT19937) MaxOutput() uint32 { return 0xffffffff }

// Descriptor returns the mt19937 descriptor.
func (g *MT19937) Descriptor() Descriptor {
	return Descriptor{
		Name:      "mt19937",
		Label:     "Mersenne Twister (MT19937)",
		SeedBits:  32,
		StateSize: mtN,
		MaxOutput: 0xffffffff,
		CanInfer:  true,
	}
}

// InferState recovers the internal state by untempering one full block
// of observed outputs. The observations must start at a block boundary
// (e.g. the first outputs after seeding); surplus observations are
// verified against the regenerated continuation.
func (g *MT19937) InferState(observed []uint32) error {
	if len(observed) < mtN {
		return fmt.Errorf("prng: mt19937 inference needs %d observations, got %d", mtN, len(observed))
	}
	for i := 0; i < mtN; i++ {
		g.mt[i] = untemper(observed[i])
	}
	g.mti = mtN
	for _, want := range observed[mtN:] {
		if got := g.Next(); got != want {
			g.mti = mtN
			return fmt.Errorf("prng: mt19937 inference verification failed: got %d, want %d", got, want)
		}
	}
	return nil
}

// temper applies the MT19937 output transform.
func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// untemper inverts temper. The shift-by-7 and shift-by-11 stages are
// inverted by fixed-point iteration; the shifts of 18 and 15 invert in
// one step.
func untemper(y uint32) uint32 {
	y ^= y >> 18
	y ^= (y << 15) & temperingC

	x := y
	for i := 0; i < 5; i++ {
		x = y ^ (x<<7)&temperingB
	}
	y = x

	x = y
	for i := 0; i < 3; i++ {
		x = y ^ x>>11
	}
	return x
}
