package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// buildWAV constructs a minimal valid 16-bit PCM WAV file in memory.
func buildWAV(sampleRate uint32, numChannels uint16, samples []int16) []byte {
	const bitsPerSample = 16
	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)
	byteRate := sampleRate * uint32(numChannels) * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, numChannels)
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func TestProbe(t *testing.T) {
	// 0.5s of mono audio at 44.1kHz
	samples := make([]int16, 22050)
	info, err := Probe(bytes.NewReader(buildWAV(44100, 1, samples)))
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", info.NumChannels)
	}
	if info.NumSamples != 22050 {
		t.Errorf("NumSamples = %d, want 22050", info.NumSamples)
	}
	if math.Abs(info.Duration-500) > 1e-9 {
		t.Errorf("Duration = %f, want 500", info.Duration)
	}
}

func TestProbeStereoFile(t *testing.T) {
	// 100 stereo frames at 1kHz = 100ms
	samples := make([]int16, 200)
	path := filepath.Join(t.TempDir(), "か.wav")
	if err := os.WriteFile(path, buildWAV(1000, 2, samples), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := ProbeFile(path)
	if err != nil {
		t.Fatalf("ProbeFile error: %v", err)
	}
	if info.NumSamples != 100 || info.Duration != 100 {
		t.Errorf("info = %+v, want 100 frames lasting 100ms", info)
	}
}

func TestProbeInvalid(t *testing.T) {
	if _, err := Probe(bytes.NewReader([]byte("not a wav file at all"))); err == nil {
		t.Error("expected error for non-WAV input")
	}
	if _, err := ProbeFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSampleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/voice/_ああいあうえあ.wav", "_ああいあうえあ"},
		{"song.01.wav", "song.01"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := SampleName(tt.path); got != tt.want {
			t.Errorf("SampleName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
