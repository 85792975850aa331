package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ieee0824/ust2lab-go/audio"
	"github.com/ieee0824/ust2lab-go/internal/textenc"
	"github.com/ieee0824/ust2lab-go/oto"
)

func main() {
	paramsPath := flag.String("params", "", "YAML file with offset, overlap, fixed, preutterance and cutoff")
	offset := flag.Float64("offset", 0, "offset (left blank) in ms")
	overlap := flag.Float64("overlap", 0, "overlap in ms, relative to offset")
	fixed := flag.Float64("fixed", 0, "consonant (fixed) length in ms, relative to offset")
	preutterance := flag.Float64("preutterance", 0, "preutterance in ms, relative to offset")
	cutoff := flag.Float64("cutoff", 0, "cutoff in ms: negative = length from offset, positive = blank before sample end")
	mergePath := flag.String("merge", "", "existing oto.ini: keep its entries and only add samples it lacks")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: otogen [flags] <wav-files...>")
		fmt.Fprintln(os.Stderr, "  Writes one oto.ini line per sample to stdout.")
		fmt.Fprintln(os.Stderr, "  Supports glob patterns: otogen /path/to/voice/*.wav")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var params oto.Params
	if *paramsPath != "" {
		data, err := os.ReadFile(*paramsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &params); err != nil {
			fmt.Fprintf(os.Stderr, "Error: decode %s: %v\n", *paramsPath, err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "offset":
			params.Offset = *offset
		case "overlap":
			params.Overlap = *overlap
		case "fixed":
			params.Fixed = *fixed
		case "preutterance":
			params.Preutterance = *preutterance
		case "cutoff":
			params.Cutoff = *cutoff
		}
	})

	// Expand glob patterns
	var files []string
	for _, arg := range flag.Args() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern %q: %v\n", arg, err)
			os.Exit(1)
		}
		if matches == nil {
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	samples := make([]string, 0, len(files))
	for _, path := range files {
		samples = append(samples, audio.SampleName(path))
		info, err := audio.ProbeFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
			continue
		}
		if end := params.Offset - params.Cutoff; params.Cutoff < 0 && end > info.Duration {
			fmt.Fprintf(os.Stderr, "warning: %s: cutoff at %.1f ms is past the sample end (%.1f ms)\n", path, end, info.Duration)
		}
	}

	if *mergePath != "" {
		existing, err := readOto(*mergePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range existing {
			fmt.Println(e)
		}
		samples = oto.Missing(existing, samples)
		fmt.Fprintf(os.Stderr, "Kept %d entries\n", len(existing))
	}

	if err := oto.Write(os.Stdout, oto.Generate(samples, params)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generated %d entries\n", len(samples))
}

func readOto(path string) ([]oto.Entry, error) {
	data, err := textenc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := oto.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
