/*package config loads the YAML run descriptions consumed by the lds-gen
driver. A run file names a generator and its parameters:

	generator: sphere
	bases: [2, 3]
	count: 1000
	seed: 0

Fields left out of the file keep their zero values and are filled in
with defaults by the driver.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config describes a single sequence-generation run.
type Config struct {
	// Generator names the sequence family: vdcorput, halton, haltonn,
	// circle, disk, sphere, sphere3hopf, sphere3, spheren, ivdcorput or
	// ihalton.
	Generator string `yaml:"generator"`
	// Bases lists one radix per dimension. When empty, the driver takes
	// bases from the front of the prime table.
	Bases []uint64 `yaml:"bases"`
	// Scales holds the per-dimension scale exponents of the integer
	// generators; ignored by the floating-point families.
	Scales []uint64 `yaml:"scales"`
	// Count is the number of points to emit.
	Count int `yaml:"count"`
	// Seed is the index the generator is reseeded to before the first
	// point.
	Seed uint64 `yaml:"seed"`
}

// Load reads and parses a run description.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
