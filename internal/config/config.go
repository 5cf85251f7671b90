package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity   = 4
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 80
)

// Config describes one scripted run against a dynamic array.
type Config struct {
	Name     string     `yaml:"name"`
	Capacity int        `yaml:"capacity"`
	Ops      []string   `yaml:"ops"`
	Plot     PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "custom",
		Capacity: DefaultCapacity,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if len(c.Ops) == 0 {
		return errors.New("no ops")
	}
	if c.Plot.Height <= 0 || c.Plot.Width <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// ValidateName rejects run names that cannot be used as a single directory
// name under the data directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New("name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	return nil
}

// Clone returns a deep copy so callers can override fields freely.
func (c *Config) Clone() *Config {
	out := *c
	out.Ops = slices.Clone(c.Ops)
	return &out
}
