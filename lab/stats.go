package lab

import "github.com/ieee0824/ust2lab-go/phoneme"

// Summary counts labels by phoneme class.
type Summary struct {
	Count    int
	Duration float64 // ms from the first start to the last end
	ByClass  map[phoneme.Class]int
}

// Summarize builds a Summary of labels.
func Summarize(labels []Label) Summary {
	s := Summary{Count: len(labels), ByClass: make(map[phoneme.Class]int)}
	for _, l := range labels {
		s.ByClass[phoneme.Classify(phoneme.Phoneme(l.Name))]++
	}
	if len(labels) > 0 {
		s.Duration = labels[len(labels)-1].End - labels[0].Start
	}
	return s
}
