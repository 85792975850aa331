// Package score extracts timed notes from UST score text and Standard MIDI
// Files.
package score

import "math"

// TicksPerQuarter is the UST tick resolution.
const TicksPerQuarter = 480

// Note is a timed lyric event. Position and Length are in milliseconds.
type Note struct {
	Position float64
	Length   float64
	Lyric    string
}

// End returns the time at which the note stops.
func (n Note) End() float64 {
	return n.Position + n.Length
}

// TicksToMs converts a tick count at the given tempo (quarter notes per
// minute) to milliseconds, rounded to 5 decimal places.
func TicksToMs(tempo float64, ticks int) float64 {
	ms := 1000 * 60.0 / TicksPerQuarter / tempo * float64(ticks)
	return math.Round(ms*1e5) / 1e5
}
