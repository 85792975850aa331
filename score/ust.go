package score

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ieee0824/ust2lab-go/internal/textenc"
)

// ErrNoTempo is returned when a note length appears before any tempo.
var ErrNoTempo = errors.New("length before tempo")

// ParseError reports a malformed score line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Extract scans UST score text and returns its notes in timeline order.
//
// A note is closed at each section marker line ("[#...") once both a lyric
// and a length have been seen since the previous close; markers without them
// are skipped. The tempo carries over between notes.
func Extract(r io.Reader) ([]Note, error) {
	var (
		notes    []Note
		tempo    float64
		hasTempo bool
		length   float64
		hasLen   bool
		lyric    string
		hasLyric bool
		pos      float64
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "Tempo="):
			raw := strings.ReplaceAll(strings.TrimPrefix(line, "Tempo="), ",", ".")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Text: line, Err: err}
			}
			if v <= 0 {
				return nil, &ParseError{Line: lineNum, Text: line, Err: fmt.Errorf("tempo must be positive, got %g", v)}
			}
			tempo, hasTempo = v, true

		case strings.HasPrefix(line, "Length="):
			ticks, err := strconv.Atoi(strings.TrimPrefix(line, "Length="))
			if err != nil {
				return nil, &ParseError{Line: lineNum, Text: line, Err: err}
			}
			if !hasTempo {
				return nil, &ParseError{Line: lineNum, Text: line, Err: ErrNoTempo}
			}
			if ticks < 0 {
				return nil, &ParseError{Line: lineNum, Text: line, Err: fmt.Errorf("length must be >= 0, got %d", ticks)}
			}
			length, hasLen = TicksToMs(tempo, ticks), true

		case strings.HasPrefix(line, "Lyric="):
			lyric, hasLyric = strings.TrimPrefix(line, "Lyric="), true

		case strings.HasPrefix(line, "[#"):
			if !hasLyric || !hasLen {
				continue
			}
			notes = append(notes, Note{Position: pos, Length: length, Lyric: lyric})
			pos += length
			hasLen, hasLyric = false, false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// ExtractFile reads a UTF-8 or Shift_JIS UST file and extracts its notes.
func ExtractFile(path string) ([]Note, error) {
	data, err := textenc.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score: %w", err)
	}
	notes, err := Extract(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return notes, nil
}
