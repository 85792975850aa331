package segment

import (
	"fmt"
	"math"
	"sort"
)

// Config holds the crossfade and vowel delay parameters, in milliseconds.
type Config struct {
	// Overlap is the time a consonant borrows from the end of the previous
	// segment. It is halved down to the previous segment's midpoint when
	// that segment is shorter than twice Overlap.
	Overlap float64 `yaml:"overlap_ms" cbor:"overlap_ms"`
	// VowelDelay is the time reserved before the vowel of a three-phoneme
	// note.
	VowelDelay float64 `yaml:"vowel_delay_ms" cbor:"vowel_delay_ms"`
	// ShortNote switches the vowel delay to a ratio of the note length for
	// notes no longer than it. Zero keeps the one-third cap.
	ShortNote float64 `yaml:"short_note_ms" cbor:"short_note_ms"`
	// ShortNoteRatio is the fraction of a short note used as vowel delay.
	ShortNoteRatio float64 `yaml:"short_note_ratio" cbor:"short_note_ratio"`
}

// DefaultConfig returns the parameterized preset: 50ms overlap, 30ms vowel
// delay capped at a third of the note.
func DefaultConfig() Config {
	return Config{
		Overlap:    50,
		VowelDelay: 30,
	}
}

// LegacyConfig returns the fixed-constant preset: 50ms overlap (half the
// previous segment up to 100ms), 30ms vowel delay for notes over 100ms and
// 30% of the note otherwise.
func LegacyConfig() Config {
	return Config{
		Overlap:        50,
		VowelDelay:     30,
		ShortNote:      100,
		ShortNoteRatio: 0.3,
	}
}

var presets = map[string]func() Config{
	"default": DefaultConfig,
	"legacy":  LegacyConfig,
}

// Preset returns the named configuration.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects negative durations and ratios outside [0, 1].
func (c Config) Validate() error {
	if c.Overlap < 0 {
		return fmt.Errorf("overlap must be >= 0, got %g", c.Overlap)
	}
	if c.VowelDelay < 0 {
		return fmt.Errorf("vowel delay must be >= 0, got %g", c.VowelDelay)
	}
	if c.ShortNote < 0 {
		return fmt.Errorf("short note threshold must be >= 0, got %g", c.ShortNote)
	}
	if c.ShortNoteRatio < 0 || c.ShortNoteRatio > 1 {
		return fmt.Errorf("short note ratio must be within [0, 1], got %g", c.ShortNoteRatio)
	}
	return nil
}

// overlapFor returns the overlap to borrow from a pending segment of the
// given duration. The result never exceeds half of that duration.
func (c Config) overlapFor(pending float64) float64 {
	if pending < c.Overlap*2 {
		return math.Trunc(pending / 2)
	}
	return c.Overlap
}

// vowelDelayFor returns the vowel delay for a note of the given length.
func (c Config) vowelDelayFor(length float64) float64 {
	if c.ShortNote > 0 {
		if length > c.ShortNote {
			return c.VowelDelay
		}
		return math.Trunc(length * c.ShortNoteRatio)
	}
	if length < c.VowelDelay*3 {
		return math.Trunc(length / 3)
	}
	return c.VowelDelay
}
