package prng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nozzle/untwist/prng"
)

func TestPHPMtRandDeterministic(t *testing.T) {
	a := prng.NewPHPMtRand()
	a.Seed(31337)
	b := prng.NewPHPMtRand()
	b.Seed(31337)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "output %d", i)
	}
}

func TestPHPMtRandOutputBound(t *testing.T) {
	g := prng.NewPHPMtRand()
	g.Seed(42)
	for i := 0; i < 2000; i++ {
		v := g.Next()
		require.LessOrEqual(t, v, uint32(0x7fffffff))
	}
}

// The PHP reload quirk (carry taken from the upper word) must make the
// stream diverge from canonical MT19937 shifted right once.
func TestPHPMtRandDivergesFromMT19937(t *testing.T) {
	php := prng.NewPHPMtRand()
	php.Seed(31337)
	mt := prng.NewMT19937()
	mt.Seed(31337)

	diverged := false
	for i := 0; i < 624; i++ {
		if php.Next() != mt.Next()>>1 {
			diverged = true
			break
		}
	}
	require.True(t, diverged, "php-mt_rand matched mt19937>>1 for a full block")
}

func TestPHPMtRandSetState(t *testing.T) {
	g := prng.NewPHPMtRand()
	require.Error(t, g.SetState(make([]uint32, 1)))
	require.NoError(t, g.SetState(make([]uint32, 624)))
}
