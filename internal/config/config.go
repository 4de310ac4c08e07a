// Package config loads the optional YAML preset file for the CLI. Zero
// fields mean "not set"; explicit flags override the file and range
// validation happens in the controller setters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML preset.
type File struct {
	PRNG          string  `yaml:"prng"`
	Depth         int     `yaml:"depth"`
	Threads       int     `yaml:"threads"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// Load reads and parses the preset at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return f, nil
}
