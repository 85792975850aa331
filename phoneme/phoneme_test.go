package phoneme

import "testing"

var knownPhonemes = []Phoneme{
	PhonRest, PhonSil, PhonPau,
	PhonA, PhonI, PhonU, PhonE, PhonO,
	PhonK, PhonG, PhonT, PhonD, PhonP, PhonB,
	PhonS, PhonZ, PhonH, PhonF,
	PhonCh, PhonTs, PhonJ,
	PhonM, PhonN, PhonNg,
	PhonR,
	PhonY, PhonW,
	PhonSh,
	PhonCl,
}

func TestAllPhonemes(t *testing.T) {
	phonemes := knownPhonemes
	if len(phonemes) != 28 {
		t.Errorf("len(knownPhonemes) = %d, want 28", len(phonemes))
	}
	seen := make(map[Phoneme]bool)
	for _, p := range phonemes {
		if seen[p] {
			t.Errorf("duplicate phoneme: %s", p)
		}
		seen[p] = true
		if Classify(p) == ClassOther {
			t.Errorf("Classify(%s) = other, want a known class", p)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		p    Phoneme
		want Class
	}{
		{PhonA, ClassVowel},
		{PhonNg, ClassVowel},
		{PhonY, ClassSemivowel},
		{PhonK, ClassConsonant},
		{PhonCl, ClassConsonant},
		{PhonRest, ClassRest},
		{"xyz", ClassOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.p); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestSequenceParseString(t *testing.T) {
	seq := Parse("  k  y a ")
	if !seq.Equal(Seq(PhonK, PhonY, PhonA)) {
		t.Fatalf("Parse = %v, want [k y a]", seq)
	}
	if got := seq.String(); got != "k y a" {
		t.Errorf("String() = %q, want %q", got, "k y a")
	}
	if Seq(PhonK).Equal(Seq(PhonK, PhonA)) {
		t.Error("sequences of different length reported equal")
	}
}
