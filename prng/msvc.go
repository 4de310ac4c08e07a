// Microsoft CRT rand(): a linear congruential generator with multiplier
// 214013 and increment 2531011 over the full 32-bit word, emitting bits
// 16..30 of the state (15-bit outputs, RAND_MAX = 0x7fff).

package prng

import "fmt"

// MsvcRand is the Microsoft CRT linear congruential generator.
type MsvcRand struct {
	state uint32
}

// NewMsvcRand creates an unseeded MSVC LCG.
func NewMsvcRand() *MsvcRand {
	return &MsvcRand{}
}

// Seed sets the single-word state, matching srand.
func (g *MsvcRand) Seed(seed uint32) {
	g.state = seed
}

// SetState installs the single-word raw state.
func (g *MsvcRand) SetState(state []uint32) error {
	if len(state) != 1 {
		return fmt.Errorf("prng: msvc-rand state must be 1 word, got %d", len(state))
	}
	g.state = state[0]
	return nil
}

// Next advances the LCG and returns the 15 output bits.
func (g *MsvcRand) Next() uint32 {
	g.state = g.state*214013 + 2531011
	return (g.state >> 16) & 0x7fff
}

// MaxOutput returns RAND_MAX.
func (g *MsvcRand) MaxOutput() uint32 { return 0x7fff }

// Descriptor returns the msvc-rand descriptor.
func (g *MsvcRand) Descriptor() Descriptor {
	return Descriptor{
		Name:      "msvc-rand",
		Label:     "Microsoft CRT rand() LCG",
		SeedBits:  32,
		StateSize: 1,
		MaxOutput: 0x7fff,
		CanInfer:  false,
	}
}
