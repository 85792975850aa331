// Package oto places UTAU oto points on whole samples and renders them as
// oto.ini lines.
package oto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ieee0824/ust2lab-go/segment"
)

// Params are the oto values applied to every sample, in milliseconds.
// Fixed, Preutterance and Overlap are relative to Offset. A negative Cutoff
// is a length measured from Offset; otherwise it is the distance kept from
// the end of the sample.
type Params struct {
	Offset       float64 `yaml:"offset"`
	Overlap      float64 `yaml:"overlap"`
	Fixed        float64 `yaml:"fixed"`
	Preutterance float64 `yaml:"preutterance"`
	Cutoff       float64 `yaml:"cutoff"`
}

// Point indices in a generated segment.
const (
	PointFixed = iota
	PointPreutterance
	PointOverlap
	PointOffset
)

// Generate creates one segment per sample, named after the sample.
// Points are [fixed, preutterance, overlap, offset] in absolute time and the
// raw cutoff is kept as the only extra.
func Generate(samples []string, p Params) []segment.Segment {
	start := p.Offset
	end := -p.Cutoff
	if p.Cutoff < 0 {
		end = start - p.Cutoff
	}
	overlap := max(start+p.Overlap, 0)

	segs := make([]segment.Segment, 0, len(samples))
	for _, sample := range samples {
		segs = append(segs, segment.Segment{
			Sample: sample,
			Name:   sample,
			Start:  start,
			End:    end,
			Points: []float64{start + p.Fixed, start + p.Preutterance, overlap, start},
			Extras: []string{formatMs(p.Cutoff)},
		})
	}
	return segs
}

// Entry is one oto.ini line.
type Entry struct {
	Sample       string // file name, with extension
	Alias        string
	Offset       float64
	Consonant    float64
	Cutoff       float64
	Preutterance float64
	Overlap      float64
}

// FromSegment converts a generated segment back into oto values. The sample
// file is the segment's sample name with ".wav" appended.
func FromSegment(s segment.Segment) (Entry, error) {
	if len(s.Points) != 4 {
		return Entry{}, fmt.Errorf("segment %s: expected 4 points, got %d", s.Name, len(s.Points))
	}
	if len(s.Extras) != 1 {
		return Entry{}, fmt.Errorf("segment %s: expected cutoff extra, got %d extras", s.Name, len(s.Extras))
	}
	cutoff, err := strconv.ParseFloat(s.Extras[0], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("segment %s: cutoff: %w", s.Name, err)
	}
	left := s.Points[PointOffset]
	return Entry{
		Sample:       s.Sample + ".wav",
		Alias:        s.Name,
		Offset:       left,
		Consonant:    s.Points[PointFixed] - left,
		Cutoff:       cutoff,
		Preutterance: s.Points[PointPreutterance] - left,
		Overlap:      s.Points[PointOverlap] - left,
	}, nil
}

// String renders the entry as sample=alias,offset,consonant,cutoff,preutterance,overlap.
func (e Entry) String() string {
	return fmt.Sprintf("%s=%s,%s,%s,%s,%s,%s",
		e.Sample, e.Alias,
		formatMs(e.Offset), formatMs(e.Consonant), formatMs(e.Cutoff),
		formatMs(e.Preutterance), formatMs(e.Overlap))
}

// Write renders segments as oto.ini lines.
func Write(w io.Writer, segs []segment.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		e, err := FromSegment(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseLine parses one oto.ini line. Empty numeric fields read as zero and
// an empty alias falls back to the sample name without extension.
func ParseLine(line string) (Entry, error) {
	sample, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok || sample == "" {
		return Entry{}, fmt.Errorf("invalid oto line %q", line)
	}
	fields := strings.Split(value, ",")
	if len(fields) != 6 {
		return Entry{}, fmt.Errorf("invalid oto line %q: expected 6 fields, got %d", line, len(fields))
	}
	e := Entry{Sample: sample, Alias: fields[0]}
	if e.Alias == "" {
		e.Alias = strings.TrimSuffix(sample, ".wav")
	}
	nums := []*float64{&e.Offset, &e.Consonant, &e.Cutoff, &e.Preutterance, &e.Overlap}
	for i, f := range fields[1:] {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid oto line %q: %w", line, err)
		}
		*nums[i] = v
	}
	return e, nil
}

func formatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Read parses an oto.ini file, skipping blank lines.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Missing returns the samples that have no entry yet, in input order.
// Samples are names without extension, as passed to Generate.
func Missing(entries []Entry, samples []string) []string {
	have := make(map[string]bool, len(entries))
	for _, e := range entries {
		have[strings.TrimSuffix(e.Sample, ".wav")] = true
	}
	var missing []string
	for _, s := range samples {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
