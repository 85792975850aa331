package segment

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ieee0824/ust2lab-go/phoneme"
	"github.com/ieee0824/ust2lab-go/score"
)

// ErrPhonemeCount is returned when a lyric resolves to no phonemes or to
// more than three.
var ErrPhonemeCount = errors.New("lyric must resolve to 1-3 phonemes")

// Lookuper resolves a lyric to its phoneme sequence. Implementations must be
// total: a lyric they do not know resolves to some non-empty sequence.
type Lookuper interface {
	Lookup(lyric string) phoneme.Sequence
}

// Segmenter turns notes into phoneme segments.
//
// Each note's vowel stays pending until the next note is seen, so that a
// following consonant can borrow Config.Overlap from its end.
type Segmenter struct {
	Dict   Lookuper
	Config Config
	Sample string       // copied into every segment
	Logger *slog.Logger // optional; traces every decision at debug level
}

// New creates a Segmenter with the given dictionary and configuration.
func New(dict Lookuper, cfg Config) *Segmenter {
	return &Segmenter{Dict: dict, Config: cfg}
}

// Run segments notes in order. It keeps no state between calls.
func (s *Segmenter) Run(notes []score.Note) ([]Segment, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		out     []Segment
		pending *Segment
	)

	// flush appends the pending segment after retracting its end by shrink.
	flush := func(shrink float64) {
		if pending == nil {
			return
		}
		pending.End -= shrink
		out = append(out, *pending)
		logger.Debug("push pending", "name", pending.Name, "start", pending.Start, "end", pending.End, "shrink", shrink)
		pending = nil
	}
	emit := func(name phoneme.Phoneme, start, end float64) {
		seg := s.newSegment(name, start, end)
		out = append(out, seg)
		logger.Debug("push new", "name", seg.Name, "start", seg.Start, "end", seg.End)
	}
	hold := func(name phoneme.Phoneme, start, end float64) {
		seg := s.newSegment(name, start, end)
		pending = &seg
		logger.Debug("assign pending", "name", seg.Name, "start", seg.Start, "end", seg.End)
	}

	for i, note := range notes {
		phonemes := s.Dict.Lookup(note.Lyric)
		logger.Debug("on note",
			"index", i,
			"position", note.Position,
			"length", note.Length,
			"lyric", note.Lyric,
			"phonemes", phonemes.String(),
		)

		if len(phonemes) == 0 || len(phonemes) > 3 {
			return nil, fmt.Errorf("note %d %q: %w, got %d", i, note.Lyric, ErrPhonemeCount, len(phonemes))
		}

		if len(phonemes) == 1 {
			flush(0)
			hold(phonemes[0], note.Position, note.End())
			continue
		}

		overlap := 0.0
		if pending != nil {
			overlap = s.Config.overlapFor(pending.Duration())
		}
		flush(overlap)

		if len(phonemes) == 2 {
			emit(phonemes[0], note.Position-overlap, note.Position)
			hold(phonemes[1], note.Position, note.End())
			continue
		}

		vowelDelay := s.Config.vowelDelayFor(note.Length)
		consonant := math.Trunc((overlap + vowelDelay) / 2)
		semivowel := overlap + vowelDelay - consonant

		consonantStart := note.Position - overlap
		semivowelStart := consonantStart + consonant
		vowelStart := semivowelStart + semivowel

		emit(phonemes[0], consonantStart, semivowelStart)
		emit(phonemes[1], semivowelStart, vowelStart)
		hold(phonemes[2], vowelStart, note.End())
	}

	flush(0)
	return out, nil
}

func (s *Segmenter) newSegment(name phoneme.Phoneme, start, end float64) Segment {
	return Segment{
		Sample: s.Sample,
		Name:   string(name),
		Start:  start,
		End:    end,
		Points: []float64{},
		Extras: []string{},
	}
}
