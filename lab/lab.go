// Package lab reads and writes phoneme label files.
package lab

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ieee0824/ust2lab-go/segment"
)

// Format identifies a label file layout.
type Format string

const (
	// FormatHTS is "start end name" with times in 100ns units.
	FormatHTS Format = "hts"
	// FormatAudacity is "start<TAB>end<TAB>name" with times in seconds.
	FormatAudacity Format = "audacity"
)

const htsUnitsPerMs = 10000

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatHTS, FormatAudacity:
		return f, nil
	case "lab":
		return FormatHTS, nil
	case "txt":
		return FormatAudacity, nil
	}
	return "", fmt.Errorf("unknown label format %q", name)
}

// Label is one line of a label file. Start and End are milliseconds.
type Label struct {
	Start float64
	End   float64
	Name  string
}

// FromSegments drops the pass-through fields of segs.
func FromSegments(segs []segment.Segment) []Label {
	labels := make([]Label, len(segs))
	for i, s := range segs {
		labels[i] = Label{Start: s.Start, End: s.End, Name: s.Name}
	}
	return labels
}

// Write renders segs in the given format.
func Write(w io.Writer, f Format, segs []segment.Segment) error {
	switch f {
	case FormatHTS:
		return WriteHTS(w, segs)
	case FormatAudacity:
		return WriteAudacity(w, segs)
	}
	return fmt.Errorf("unknown label format %q", f)
}

// WriteHTS writes segs as an HTS label file.
func WriteHTS(w io.Writer, segs []segment.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", toHTS(s.Start), toHTS(s.End), s.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteAudacity writes segs as an Audacity label track.
func WriteAudacity(w io.Writer, segs []segment.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		start := strconv.FormatFloat(s.Start/1000, 'f', -1, 64)
		end := strconv.FormatFloat(s.End/1000, 'f', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", start, end, s.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func toHTS(ms float64) int64 {
	return int64(math.Round(ms * htsUnitsPerMs))
}

// Read parses a label file in the given format.
func Read(r io.Reader, f Format) ([]Label, error) {
	switch f {
	case FormatHTS:
		return ReadHTS(r)
	case FormatAudacity:
		return ReadAudacity(r)
	}
	return nil, fmt.Errorf("unknown label format %q", f)
}

// ReadHTS parses an HTS label file.
func ReadHTS(r io.Reader) ([]Label, error) {
	return read(r, func(v float64) float64 { return v / htsUnitsPerMs })
}

// ReadAudacity parses an Audacity label track. Spectral selection lines,
// which start with a backslash, are skipped.
func ReadAudacity(r io.Reader) ([]Label, error) {
	return read(r, func(v float64) float64 { return v * 1000 })
}

func read(r io.Reader, toMs func(float64) float64) ([]Label, error) {
	var labels []Label
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		if strings.HasPrefix(raw, "\\") {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected start and end, got %q", lineNum, raw)
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: start: %w", lineNum, err)
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: end: %w", lineNum, err)
		}
		labels = append(labels, Label{
			Start: toMs(start),
			End:   toMs(end),
			Name:  strings.Join(fields[2:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}
