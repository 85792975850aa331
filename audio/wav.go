package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/wav"
)

// Info describes a sample file. Only the header is inspected.
type Info struct {
	SampleRate  int
	NumChannels int
	Precision   int // bytes per sample
	NumSamples  int
	Duration    float64 // milliseconds
}

// Probe reads a WAV header and reports the sample's format and length.
func Probe(r io.Reader) (Info, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode WAV: %w", err)
	}
	defer s.Close()

	n := s.Len()
	info := Info{
		SampleRate:  int(format.SampleRate),
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
		NumSamples:  n,
	}
	if info.SampleRate > 0 {
		info.Duration = float64(n) * 1000 / float64(info.SampleRate)
	}
	return info, nil
}

// ProbeFile is a convenience wrapper that opens a file path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()
	return Probe(f)
}

// SampleName returns the sample reference for a file: its base name
// without extension.
func SampleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
