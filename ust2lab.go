// Package ust2lab turns singing scores into phoneme timing labels.
package ust2lab

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ieee0824/ust2lab-go/audio"
	"github.com/ieee0824/ust2lab-go/config"
	"github.com/ieee0824/ust2lab-go/lab"
	"github.com/ieee0824/ust2lab-go/lexicon"
	"github.com/ieee0824/ust2lab-go/plan"
	"github.com/ieee0824/ust2lab-go/score"
	"github.com/ieee0824/ust2lab-go/segment"
)

// Labeler is the top-level score labeler.
type Labeler struct {
	Dict       *lexicon.Dictionary
	Config     segment.Config
	Sample     string       // sample name copied into every segment
	SamplePath string       // optional WAV file checked against the plan length
	Logger     *slog.Logger // nil discards
}

// Option configures a Labeler.
type Option func(*Labeler)

// WithConfig sets custom segmenter parameters.
func WithConfig(cfg segment.Config) Option {
	return func(l *Labeler) {
		l.Config = cfg
	}
}

// WithSample sets the sample name carried by every segment.
func WithSample(name string) Option {
	return func(l *Labeler) {
		l.Sample = name
	}
}

// WithSampleFile names the segments after a WAV file and checks that the
// plan fits inside it.
func WithSampleFile(path string) Option {
	return func(l *Labeler) {
		if path == "" {
			return
		}
		l.Sample = audio.SampleName(path)
		l.SamplePath = path
	}
}

// WithLogger sets the logger used for warnings and segmenter traces.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Labeler) {
		l.Logger = logger
	}
}

// NewLabeler creates a Labeler reading its dictionary from dictPath. An
// empty path selects the built-in kana dictionary.
func NewLabeler(dictPath string, opts ...Option) (*Labeler, error) {
	dict := lexicon.KanaDictionary()
	if dictPath != "" {
		var err error
		dict, err = lexicon.LoadFile(dictPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
	}
	return NewLabelerFromDictionary(dict, opts...)
}

// NewLabelerFromDictionary creates a Labeler from a loaded dictionary.
func NewLabelerFromDictionary(dict *lexicon.Dictionary, opts ...Option) (*Labeler, error) {
	l := &Labeler{
		Dict:   dict,
		Config: segment.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.Logger == nil {
		l.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := l.Config.Validate(); err != nil {
		return nil, fmt.Errorf("segmenter config: %w", err)
	}
	return l, nil
}

// NewLabelerFromConfig creates a Labeler from loaded run settings. Extra
// options are applied after the settings.
func NewLabelerFromConfig(cfg config.Config, opts ...Option) (*Labeler, error) {
	sc, err := cfg.Segmenter()
	if err != nil {
		return nil, fmt.Errorf("segmenter config: %w", err)
	}
	base := []Option{WithConfig(sc)}
	if cfg.Sample != "" {
		base = append(base, WithSample(cfg.Sample))
	}
	return NewLabeler(cfg.Dictionary, append(base, opts...)...)
}

// ReadNotes extracts notes from a UST file, or from a Standard MIDI File
// when the extension is .mid or .midi.
func ReadNotes(path string) ([]score.Note, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return score.ReadSMFFile(path)
	default:
		return score.ExtractFile(path)
	}
}

// Segments runs the segmenter over notes.
func (l *Labeler) Segments(notes []score.Note) ([]segment.Segment, error) {
	s := segment.New(l.Dict, l.Config)
	s.Sample = l.Sample
	s.Logger = l.Logger
	return s.Run(notes)
}

// Label segments notes and wraps the result in a plan. source names the
// score the notes came from.
func (l *Labeler) Label(source string, notes []score.Note) (*plan.Plan, error) {
	segs, err := l.Segments(notes)
	if err != nil {
		return nil, err
	}
	p := plan.New(l.Sample, source, l.Config, segs)
	l.checkSample(p)
	return p, nil
}

// LabelFile reads a score file and labels it.
func (l *Labeler) LabelFile(path string) (*plan.Plan, error) {
	notes, err := ReadNotes(path)
	if err != nil {
		return nil, err
	}
	l.Logger.Info("notes extracted", "source", path, "count", len(notes))
	return l.Label(path, notes)
}

// checkSample warns when the plan runs past the end of the sample file.
func (l *Labeler) checkSample(p *plan.Plan) {
	if l.SamplePath == "" {
		return
	}
	info, err := audio.ProbeFile(l.SamplePath)
	if err != nil {
		l.Logger.Warn("cannot probe sample", "path", l.SamplePath, "err", err)
		return
	}
	if end := p.End(); end > info.Duration {
		l.Logger.Warn("labels run past the end of the sample",
			"sample", l.Sample,
			"labels_ms", end,
			"sample_ms", info.Duration,
		)
	}
}

// Emit writes p as a label file, or as a CBOR plan when format is "plan".
func Emit(w io.Writer, p *plan.Plan, format string) error {
	if format == config.FormatPlan {
		return plan.Write(w, p)
	}
	f, err := lab.ParseFormat(format)
	if err != nil {
		return err
	}
	return lab.Write(w, f, p.Segments)
}
