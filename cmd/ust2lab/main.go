package main

import (
	"flag"
	"fmt"
	"os"

	ust2lab "github.com/ieee0824/ust2lab-go"
	"github.com/ieee0824/ust2lab-go/config"
	"github.com/ieee0824/ust2lab-go/internal/logging"
	"github.com/ieee0824/ust2lab-go/plan"
	"github.com/ieee0824/ust2lab-go/segment"
)

func main() {
	scorePath := flag.String("ust", "", "path to input UST or MIDI file")
	dictPath := flag.String("dict", "", "path to lyric dictionary (default: built-in kana dictionary)")
	configPath := flag.String("config", "", "path to YAML config file")
	preset := flag.String("preset", "", fmt.Sprintf("timing preset %v", segment.PresetNames()))
	overlap := flag.Float64("overlap", 0, "consonant overlap in ms (overrides preset)")
	vowelDelay := flag.Float64("vowel-delay", 0, "vowel delay in ms (overrides preset)")
	format := flag.String("format", "", "output format: hts, audacity or plan")
	samplePath := flag.String("sample", "", "path to the sample WAV (names the segments, checks length)")
	outPath := flag.String("o", "", "output file (default: stdout)")
	verbose := flag.Bool("v", false, "log every segmenter decision")

	flag.Parse()

	if *scorePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ust2lab -ust SCORE [-dict DICT] [-format hts|audacity|plan] [-o OUT]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Loader{}.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["dict"] {
		cfg.Dictionary = *dictPath
	}
	if set["preset"] {
		cfg.Preset = *preset
	}
	if set["overlap"] {
		cfg.Overlap = overlap
	}
	if set["vowel-delay"] {
		cfg.VowelDelay = vowelDelay
	}
	if set["format"] {
		cfg.Format = *format
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, level)

	l, err := ust2lab.NewLabelerFromConfig(cfg,
		ust2lab.WithSampleFile(*samplePath),
		ust2lab.WithLogger(logger),
	)
	if err != nil {
		fatal(err)
	}

	p, err := l.LabelFile(*scorePath)
	if err != nil {
		fatal(err)
	}

	if err := writeOutput(*outPath, p, cfg.Format); err != nil {
		fatal(err)
	}

	logger.Info("labels written", "plan", p.ID, "segments", len(p.Segments), "end_ms", p.End())
}

// writeOutput emits p to path, or to stdout when path is empty.
func writeOutput(path string, p *plan.Plan, format string) error {
	switch {
	case path == "":
		return ust2lab.Emit(os.Stdout, p, format)
	case format == config.FormatPlan:
		return plan.Save(path, p)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ust2lab.Emit(f, p, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
