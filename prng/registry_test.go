package prng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nozzle/untwist/prng"
)

func TestRegistry(t *testing.T) {
	names := prng.Names()
	require.NotEmpty(t, names)
	require.Equal(t, "mt19937", names[0])

	for _, name := range names {
		require.True(t, prng.Supports(name))
		g, err := prng.New(name)
		require.NoError(t, err)
		require.Equal(t, name, g.Descriptor().Name)
		require.Equal(t, g.MaxOutput(), g.Descriptor().MaxOutput)
	}

	require.False(t, prng.Supports("xorshift128"))
	_, err := prng.New("xorshift128")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	d, err := prng.Describe("mt19937")
	require.NoError(t, err)
	require.True(t, d.CanInfer)
	require.Equal(t, 624, d.StateSize)

	_, err = prng.Describe("nope")
	require.Error(t, err)
}
