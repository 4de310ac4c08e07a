// PHP mt_rand() as shipped in PHP 5.2.1 through 7.0 (the MT_RAND_PHP
// behaviour, ext/standard/rand.c): MT19937 seeding and tempering, but
// php_mt_reload takes the twist carry from the low bit of the word
// supplying the upper mask bit, and mt_rand discards the low output bit,
// so outputs span [0, 0x7fffffff] (mt_getrandmax).

package prng

import "fmt"

// PHPMtRand is the PHP 5.x/7.0 mt_rand generator.
type PHPMtRand struct {
	mt  [mtN]uint32
	mti int
}

// NewPHPMtRand creates an unseeded PHP mt_rand generator.
func NewPHPMtRand() *PHPMtRand {
	return &PHPMtRand{mti: mtN}
}

// Seed initializes the state, matching php_mt_initialize.
func (g *PHPMtRand) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < mtN; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = mtN
}

// SetState installs a raw 624-word state.
func (g *PHPMtRand) SetState(state []uint32) error {
	if len(state) != mtN {
		return fmt.Errorf("prng: php-mt_rand state must be %d words, got %d", mtN, len(state))
	}
	copy(g.mt[:], state)
	g.mti = mtN
	return nil
}

// Next returns the next 31-bit output.
func (g *PHPMtRand) Next() uint32 {
	if g.mti >= mtN {
		g.reload()
	}
	y := g.mt[g.mti]
	g.mti++
	return temper(y) >> 1
}

// reload regenerates the block. Unlike canonical MT19937 the carry bit
// comes from the word supplying the upper mask bit (PHP's twist macro
// uses loBit(u), not loBit(v)).
func (g *PHPMtRand) reload() {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag01[g.mt[kk]&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[g.mt[kk]&1]
	}
	y = (g.mt[mtN-1] & upperMask) | (g.mt[0] & lowerMask)
	g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag01[g.mt[mtN-1]&1]
	g.mti = 0
}

// MaxOutput returns mt_getrandmax().
func (g *PHPMtRand) MaxOutput() uint32 { return 0x7fffffff }

// Descriptor returns the php-mt_rand descriptor.
func (g *PHPMtRand) Descriptor() Descriptor {
	return Descriptor{
		Name:      "php-mt_rand",
		Label:     "PHP mt_rand() (pre-7.1)",
		SeedBits:  32,
		StateSize: mtN,
		MaxOutput: 0x7fffffff,
		CanInfer:  false,
	}
}
