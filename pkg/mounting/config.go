package mounting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls recycle pool policy.
type Config struct {
	// MaxPoolSizePerType caps how many reset views are retained per
	// component type. When a release would exceed the cap, the oldest
	// pooled view is disposed. Zero or negative means unlimited.
	MaxPoolSizePerType int `yaml:"maxPoolSizePerType,omitempty"`

	// Prewarm maps component names to the number of instances
	// PrewarmFromConfig constructs ahead of need.
	Prewarm map[string]int `yaml:"prewarm,omitempty"`
}

// DefaultConfig returns the default policy: unlimited pools, no prewarm.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads mounting.yaml from dir if present. A missing file is not
// an error and yields DefaultConfig.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, "mounting.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read mounting.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse mounting.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the registry cannot honor.
func (c Config) Validate() error {
	for name, count := range c.Prewarm {
		if count < 0 {
			return fmt.Errorf("prewarm count for %q is negative: %d", name, count)
		}
	}
	return nil
}
