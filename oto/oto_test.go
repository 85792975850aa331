package oto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ieee0824/ust2lab-go/segment"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   segment.Segment
	}{
		{
			name:   "negative_cutoff",
			params: Params{Offset: 100, Overlap: 20, Fixed: 150, Preutterance: 80, Cutoff: -400},
			want: segment.Segment{
				Sample: "ka", Name: "ka",
				Start: 100, End: 500,
				Points: []float64{250, 180, 120, 100},
				Extras: []string{"-400"},
			},
		},
		{
			name:   "cutoff_from_sample_end",
			params: Params{Offset: 10, Overlap: -30, Fixed: 50, Preutterance: 40, Cutoff: 25},
			want: segment.Segment{
				Sample: "ka", Name: "ka",
				Start: 10, End: -25,
				Points: []float64{60, 50, 0, 10},
				Extras: []string{"25"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Generate([]string{"ka"}, tt.params)
			if len(segs) != 1 {
				t.Fatalf("len(segs) = %d, want 1", len(segs))
			}
			if diff := cmp.Diff(tt.want, segs[0]); diff != "" {
				t.Errorf("Generate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateManySamples(t *testing.T) {
	samples := []string{"a", "i", "u"}
	segs := Generate(samples, Params{Cutoff: -100})
	if len(segs) != len(samples) {
		t.Fatalf("len(segs) = %d, want %d", len(segs), len(samples))
	}
	for i, s := range segs {
		if s.Sample != samples[i] || s.Name != samples[i] {
			t.Errorf("segs[%d] = %s/%s, want %s", i, s.Sample, s.Name, samples[i])
		}
	}
}

func TestWrite(t *testing.T) {
	segs := Generate([]string{"_あか"}, Params{Offset: 100, Overlap: 20, Fixed: 150, Preutterance: 80, Cutoff: -400.5})
	var buf bytes.Buffer
	if err := Write(&buf, segs); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	want := "_あか.wav=_あか,100,150,-400.5,80,20\n"
	if got := buf.String(); got != want {
		t.Errorf("Write = %q, want %q", got, want)
	}
}

func TestWriteRejectsForeignSegment(t *testing.T) {
	seg := segment.Segment{Sample: "x", Name: "a", Start: 0, End: 10}
	if err := Write(&bytes.Buffer{}, []segment.Segment{seg}); err == nil {
		t.Error("expected error for segment without oto points")
	}
}

func TestParseLine(t *testing.T) {
	e, err := ParseLine("ka.wav=,100,150,,80,20")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	want := Entry{Sample: "ka.wav", Alias: "ka", Offset: 100, Consonant: 150, Preutterance: 80, Overlap: 20}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"no equals sign", "ka.wav=a,1,2", "ka.wav=a,x,0,0,0,0"} {
		if _, err := ParseLine(bad); err == nil {
			t.Errorf("ParseLine(%q) expected error", bad)
		}
	}
}

func TestEntryStringParsesBack(t *testing.T) {
	e := Entry{Sample: "a.wav", Alias: "- a", Offset: 12.5, Consonant: 40, Cutoff: -200, Preutterance: 30, Overlap: 10}
	got, err := ParseLine(e.String())
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if got != e {
		t.Errorf("got %+v, want %+v", got, e)
	}
}

func TestReadAndMissing(t *testing.T) {
	ini := "a.wav=a,0,100,-300,50,20\n\nka.wav=ka,10,120,-300,60,25\n"
	entries, err := Read(strings.NewReader(ini))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(entries) != 2 || entries[1].Alias != "ka" || entries[1].Offset != 10 {
		t.Fatalf("Read = %+v", entries)
	}

	got := Missing(entries, []string{"a", "i", "ka", "ki"})
	if diff := cmp.Diff([]string{"i", "ki"}, got); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}

	if _, err := Read(strings.NewReader("a.wav=a,0,100\n")); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Read error = %v, want line 1 error", err)
	}
}
