package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ieee0824/ust2lab-go/config"
	"github.com/ieee0824/ust2lab-go/lab"
	"github.com/ieee0824/ust2lab-go/phoneme"
	"github.com/ieee0824/ust2lab-go/plan"
)

func main() {
	format := flag.String("format", "", "label format: hts, audacity or plan (default: from file extension)")
	allowEmpty := flag.Bool("allow-empty", false, "accept zero-length labels")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Usage: labcheck [-format hts|audacity|plan] LABELS [REFERENCE]")
		fmt.Fprintln(os.Stderr, "  With one file, validates it and prints a summary.")
		fmt.Fprintln(os.Stderr, "  With two files, also compares them.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	labels, err := readLabels(flag.Arg(0), *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	if err := lab.Validate(labels, lab.ValidateOptions{AllowEmpty: *allowEmpty}); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", flag.Arg(0), err)
		failed = true
	}

	s := lab.Summarize(labels)
	fmt.Printf("%s: %d labels, %.3f ms\n", flag.Arg(0), s.Count, s.Duration)
	classes := make([]phoneme.Class, 0, len(s.ByClass))
	for c := range s.ByClass {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	for _, c := range classes {
		fmt.Printf("  %-10s %d\n", c, s.ByClass[c])
	}

	if flag.NArg() == 2 {
		ref, err := readLabels(flag.Arg(1), *format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		d := lab.Compare(labels, ref)
		fmt.Printf("edit distance: %d\n", d.EditDistance)
		if d.Aligned {
			fmt.Printf("max boundary delta: %.3f ms\n", d.MaxBoundaryDelta)
		} else {
			fmt.Println("phoneme sequences differ; boundaries not compared")
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func readLabels(path, format string) ([]lab.Label, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	if format == config.FormatPlan {
		p, err := plan.Load(path)
		if err != nil {
			return nil, err
		}
		return lab.FromSegments(p.Segments), nil
	}
	f, err := lab.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	labels, err := lab.Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
