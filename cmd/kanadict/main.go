package main

import (
	"fmt"
	"os"

	"github.com/ieee0824/ust2lab-go/lexicon"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: kanadict [dict.txt]")
		fmt.Fprintln(os.Stderr, "  Without arguments, writes the built-in kana dictionary.")
		fmt.Fprintln(os.Stderr, "  With a dictionary, re-generates phonemes of its kana lyrics using KanaToPhonemes.")
		fmt.Fprintln(os.Stderr, "  Output goes to stdout.")
		os.Exit(1)
	}

	if len(os.Args) == 1 {
		d := lexicon.KanaDictionary()
		if err := d.Write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d entries\n", d.Len())
		return
	}

	d, err := lexicon.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	changed, skipped := d.Refresh()
	if err := d.Write(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, word := range skipped {
		fmt.Fprintf(os.Stderr, "  kept %s %s\n", word, d.Lookup(word))
	}
	fmt.Fprintf(os.Stderr, "Total: %d, Changed: %d, Kept: %d\n", d.Len(), changed, len(skipped))
}
