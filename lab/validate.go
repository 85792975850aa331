package lab

import (
	"fmt"
	"strings"
)

// ValidateOptions relaxes Validate.
type ValidateOptions struct {
	// AllowEmpty accepts zero-length labels, which the segmenter emits for a
	// consonant on the first note.
	AllowEmpty bool
}

// ValidationError lists every problem found by Validate. Line numbers are
// 1-based positions in the label list.
type ValidationError struct {
	InvalidDuration []int
	EmptyName       []int
	Inconsistent    [][2]int
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("illegal labels:")
	if len(e.InvalidDuration) > 0 {
		fmt.Fprintf(&b, "\n- invalid duration on lines: %s", joinInts(e.InvalidDuration))
	}
	if len(e.EmptyName) > 0 {
		fmt.Fprintf(&b, "\n- empty label name on lines: %s", joinInts(e.EmptyName))
	}
	if len(e.Inconsistent) > 0 {
		pairs := make([]string, len(e.Inconsistent))
		for i, p := range e.Inconsistent {
			pairs[i] = fmt.Sprintf("[%d, %d]", p[0], p[1])
		}
		fmt.Fprintf(&b, "\n- inconsistent labels on lines: %s", strings.Join(pairs, ", "))
	}
	return b.String()
}

// Validate checks durations, names and that each label starts where the
// previous one ended. It returns a *ValidationError or nil.
func Validate(labels []Label, opts ValidateOptions) error {
	verr := &ValidationError{}
	for i, l := range labels {
		d := l.End - l.Start
		if d < 0 || (d == 0 && !opts.AllowEmpty) {
			verr.InvalidDuration = append(verr.InvalidDuration, i+1)
		}
		if strings.TrimSpace(l.Name) == "" {
			verr.EmptyName = append(verr.EmptyName, i+1)
		}
	}
	for i := 0; i+1 < len(labels); i++ {
		if labels[i].End != labels[i+1].Start {
			verr.Inconsistent = append(verr.Inconsistent, [2]int{i + 1, i + 2})
		}
	}
	if len(verr.InvalidDuration) == 0 && len(verr.EmptyName) == 0 && len(verr.Inconsistent) == 0 {
		return nil
	}
	return verr
}

func joinInts(ns []int) string {
	ss := make([]string, len(ns))
	for i, n := range ns {
		ss[i] = fmt.Sprint(n)
	}
	return strings.Join(ss, ", ")
}
