package phoneme

import "strings"

// Phoneme represents a sound unit name, usually a Japanese phoneme.
type Phoneme string

const (
	// Rest and silence
	PhonRest Phoneme = "R"   // UST rest note
	PhonSil  Phoneme = "sil" // silence
	PhonPau  Phoneme = "pau" // pause

	// Vowels
	PhonA Phoneme = "a"
	PhonI Phoneme = "i"
	PhonU Phoneme = "u"
	PhonE Phoneme = "e"
	PhonO Phoneme = "o"

	// Stops (voiceless/voiced)
	PhonK Phoneme = "k"
	PhonG Phoneme = "g"
	PhonT Phoneme = "t"
	PhonD Phoneme = "d"
	PhonP Phoneme = "p"
	PhonB Phoneme = "b"

	// Fricatives
	PhonS Phoneme = "s"
	PhonZ Phoneme = "z"
	PhonH Phoneme = "h"
	PhonF Phoneme = "f" // [ɸ] as in ふ

	// Affricates
	PhonCh Phoneme = "ch" // [tɕ] as in ち
	PhonTs Phoneme = "ts" // [ts] as in つ
	PhonJ  Phoneme = "j"  // [dʑ] as in じ

	// Nasals
	PhonM  Phoneme = "m"
	PhonN  Phoneme = "n"
	PhonNg Phoneme = "N" // moraic nasal ん

	// Liquid
	PhonR Phoneme = "r" // Japanese flap

	// Semivowels
	PhonY Phoneme = "y"
	PhonW Phoneme = "w"

	// Sibilant
	PhonSh Phoneme = "sh" // [ɕ] as in し

	// Special morae
	PhonCl Phoneme = "cl" // geminate っ
)

// Class groups phonemes by the role they take inside a note.
type Class int

const (
	ClassOther Class = iota
	ClassVowel
	ClassSemivowel
	ClassConsonant
	ClassRest
)

func (c Class) String() string {
	switch c {
	case ClassVowel:
		return "vowel"
	case ClassSemivowel:
		return "semivowel"
	case ClassConsonant:
		return "consonant"
	case ClassRest:
		return "rest"
	default:
		return "other"
	}
}

// Classify returns the class of p. Unknown names are ClassOther.
func Classify(p Phoneme) Class {
	switch p {
	case PhonA, PhonI, PhonU, PhonE, PhonO, PhonNg:
		return ClassVowel
	case PhonY, PhonW:
		return ClassSemivowel
	case PhonRest, PhonSil, PhonPau:
		return ClassRest
	case PhonK, PhonG, PhonT, PhonD, PhonP, PhonB,
		PhonS, PhonZ, PhonH, PhonF,
		PhonCh, PhonTs, PhonJ,
		PhonM, PhonN, PhonR, PhonSh, PhonCl:
		return ClassConsonant
	}
	return ClassOther
}

// Sequence is an ordered list of phonemes resolved for one lyric.
type Sequence []Phoneme

// Seq is a shorthand to build a Sequence.
func Seq(ps ...Phoneme) Sequence { return ps }

// Parse splits a whitespace-separated phoneme string.
func Parse(s string) Sequence {
	fields := strings.Fields(s)
	seq := make(Sequence, len(fields))
	for i, f := range fields {
		seq[i] = Phoneme(f)
	}
	return seq
}

// String joins the sequence with single spaces, the dictionary file layout.
func (s Sequence) String() string {
	ss := make([]string, len(s))
	for i, p := range s {
		ss[i] = string(p)
	}
	return strings.Join(ss, " ")
}

// Equal reports whether both sequences hold the same phonemes in order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
