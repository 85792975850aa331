// Package segment carves timed notes into phoneme segments.
package segment

import (
	"fmt"
)

// Segment is one labeled span of a sample. Start and End are milliseconds.
// Sample, Points and Extras are carried through untouched.
type Segment struct {
	Sample string
	Name   string
	Start  float64
	End    float64
	Points []float64
	Extras []string
}

// Duration returns End - Start.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Contiguous reports the first adjacent pair whose boundaries do not meet.
func Contiguous(segs []Segment) error {
	for i := 1; i < len(segs); i++ {
		if segs[i-1].End != segs[i].Start {
			return fmt.Errorf("segment %d (%s) ends at %g but segment %d (%s) starts at %g",
				i-1, segs[i-1].Name, segs[i-1].End, i, segs[i].Name, segs[i].Start)
		}
	}
	return nil
}
