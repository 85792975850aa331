package lab

import (
	"math"

	"github.com/ieee0824/ust2lab-go/lexicon"
	"github.com/ieee0824/ust2lab-go/phoneme"
)

// Diff summarizes how two label lists differ.
type Diff struct {
	// EditDistance is the phoneme edit distance between the name sequences.
	EditDistance int
	// MaxBoundaryDelta is the largest start or end difference in
	// milliseconds. Only set when the name sequences are identical.
	MaxBoundaryDelta float64
	// Aligned reports whether both lists name the same phonemes in order.
	Aligned bool
}

// Compare measures the difference between two label lists.
func Compare(a, b []Label) Diff {
	sa, sb := names(a), names(b)
	d := Diff{EditDistance: lexicon.PhonemeEditDistance(sa, sb)}
	if d.EditDistance != 0 {
		return d
	}
	d.Aligned = true
	for i := range a {
		d.MaxBoundaryDelta = math.Max(d.MaxBoundaryDelta, math.Abs(a[i].Start-b[i].Start))
		d.MaxBoundaryDelta = math.Max(d.MaxBoundaryDelta, math.Abs(a[i].End-b[i].End))
	}
	return d
}

func names(labels []Label) phoneme.Sequence {
	seq := make(phoneme.Sequence, len(labels))
	for i, l := range labels {
		seq[i] = phoneme.Phoneme(l.Name)
	}
	return seq
}
