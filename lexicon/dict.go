package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ieee0824/ust2lab-go/internal/textenc"
	"github.com/ieee0824/ust2lab-go/phoneme"
)

// MaxPhonemes is the longest phoneme sequence a lyric may resolve to.
const MaxPhonemes = 3

// Dictionary holds lyric-to-phoneme mappings.
type Dictionary struct {
	Entries map[string]phoneme.Sequence // lyric -> phoneme sequence
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string]phoneme.Sequence),
	}
}

// Add sets the phoneme sequence for a lyric, replacing any earlier entry.
func (d *Dictionary) Add(lyric string, phonemes phoneme.Sequence) {
	d.Entries[lyric] = phonemes
}

// Load reads a dictionary from a whitespace-separated file.
// Format: lyric phoneme1 [phoneme2 [phoneme3]]
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lyric := strings.Fields(line)[0]
		seq := phoneme.Parse(strings.TrimPrefix(line, lyric))
		if len(seq) == 0 {
			return nil, fmt.Errorf("line %d: expected lyric followed by phonemes, got %q", lineNum, line)
		}
		if len(seq) > MaxPhonemes {
			return nil, fmt.Errorf("line %d: %q has %d phonemes, at most %d allowed", lineNum, lyric, len(seq), MaxPhonemes)
		}
		d.Add(lyric, seq)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that reads a UTF-8 or Shift_JIS file.
func LoadFile(path string) (*Dictionary, error) {
	data, err := textenc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}

// Lookup returns the phoneme sequence for a lyric. A lyric missing from the
// dictionary resolves to itself as a single phoneme.
func (d *Dictionary) Lookup(lyric string) phoneme.Sequence {
	if seq, ok := d.Entries[lyric]; ok {
		return seq
	}
	return phoneme.Seq(phoneme.Phoneme(lyric))
}

// PhonemeSequence returns the phoneme sequence for a lyric without fallback.
func (d *Dictionary) PhonemeSequence(lyric string) (phoneme.Sequence, bool) {
	seq, ok := d.Entries[lyric]
	return seq, ok
}

// Len returns the number of lyrics in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}

// Words returns all lyrics in the dictionary, sorted.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Write renders the dictionary in the format read by Load, sorted by lyric.
func (d *Dictionary) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, word := range d.Words() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", word, d.Entries[word]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
