package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/algodyssey/internal/trace"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDelay  = 600 * time.Millisecond
	DefaultTheme  = "dark"
	DefaultTarget = 10
)

type Config struct {
	Delay    time.Duration    `yaml:"delay"`
	Theme    string           `yaml:"theme"`
	Target   int              `yaml:"target"`
	Datasets map[string][]int `yaml:"datasets"`
}

func DefaultConfig() *Config {
	return &Config{
		Delay:    DefaultDelay,
		Theme:    DefaultTheme,
		Target:   DefaultTarget,
		Datasets: map[string][]int{},
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
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("unknown theme: %s", c.Theme)
	}
	for algo, data := range c.Datasets {
		if len(data) > trace.MaxLen {
			return fmt.Errorf("dataset %s has %d values, max %d", algo, len(data), trace.MaxLen)
		}
	}
	return nil
}

// Dataset returns the configured data for algo, or nil to use the card's own.
func (c *Config) Dataset(algo string) []int {
	data, ok := c.Datasets[algo]
	if !ok {
		return nil
	}
	out := make([]int, len(data))
	copy(out, data)
	return out
}
