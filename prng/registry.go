package prng

import "fmt"

// registration order is stable; the first entry is the default algorithm.
var registry = []struct {
	name string
	make func() Generator
}{
	{"mt19937", func() Generator { return NewMT19937() }},
	{"glibc-rand", func() Generator { return NewGlibcRand() }},
	{"msvc-rand", func() Generator { return NewMsvcRand() }},
	{"php-mt_rand", func() Generator { return NewPHPMtRand() }},
}

// Names returns the registered algorithm names in registration order.
// Names()[0] is the default algorithm.
func Names() []string {
	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.name
	}
	return names
}

// Supports reports whether name is a registered algorithm.
func Supports(name string) bool {
	for _, entry := range registry {
		if entry.name == name {
			return true
		}
	}
	return false
}

// New constructs a fresh generator instance for the named algorithm.
func New(name string) (Generator, error) {
	for _, entry := range registry {
		if entry.name == name {
			return entry.make(), nil
		}
	}
	return nil, fmt.Errorf("prng: unsupported algorithm %q", name)
}

// Describe returns the descriptor for the named algorithm.
func Describe(name string) (Descriptor, error) {
	g, err := New(name)
	if err != nil {
		return Descriptor{}, err
	}
	return g.Descriptor(), nil
}
