// Package config loads ust2lab run settings from YAML and the environment.
package config

import (
	"fmt"

	"github.com/ieee0824/ust2lab-go/internal/logging"
	"github.com/ieee0824/ust2lab-go/lab"
	"github.com/ieee0824/ust2lab-go/segment"
)

const (
	DefaultPreset   = "default"
	DefaultFormat   = "hts"
	DefaultLogLevel = "info"

	// FormatPlan selects the CBOR timing plan instead of a label file.
	FormatPlan = "plan"
)

// Config captures run settings read from a YAML file and UST2LAB_*
// environment variables. Nil durations keep the preset's values.
type Config struct {
	Preset     string   `yaml:"preset"`
	Overlap    *float64 `yaml:"overlap_ms"`
	VowelDelay *float64 `yaml:"vowel_delay_ms"`
	Dictionary string   `yaml:"dictionary"`
	Format     string   `yaml:"format"`
	LogLevel   string   `yaml:"log_level"`
	Sample     string   `yaml:"sample"`
}

// Validate applies defaults, checks names against the known presets and
// formats, and rejects negative durations.
func (c *Config) Validate() error {
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := segment.Preset(c.Preset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Format != FormatPlan {
		if _, err := lab.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Overlap != nil && *c.Overlap < 0 {
		return fmt.Errorf("config: overlap_ms must be >= 0, got %g", *c.Overlap)
	}
	if c.VowelDelay != nil && *c.VowelDelay < 0 {
		return fmt.Errorf("config: vowel_delay_ms must be >= 0, got %g", *c.VowelDelay)
	}
	return nil
}

// Segmenter resolves the preset and duration overrides into a segmenter
// configuration.
func (c Config) Segmenter() (segment.Config, error) {
	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	sc, err := segment.Preset(name)
	if err != nil {
		return segment.Config{}, err
	}
	if c.Overlap != nil {
		sc.Overlap = *c.Overlap
	}
	if c.VowelDelay != nil {
		sc.VowelDelay = *c.VowelDelay
	}
	if err := sc.Validate(); err != nil {
		return segment.Config{}, err
	}
	return sc, nil
}
