package score

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultTempo applies until the first tempo meta event.
const DefaultTempo = 120.0

// SMFOptions controls Standard MIDI File import.
type SMFOptions struct {
	// Track selects the track holding the melody; -1 picks the first track
	// with notes.
	Track int
	// DefaultLyric names notes that carry no lyric event.
	DefaultLyric string
	// RestLyric names the rest notes inserted into gaps between notes.
	RestLyric string
}

// DefaultSMFOptions returns the options used by ReadSMFFile.
func DefaultSMFOptions() SMFOptions {
	return SMFOptions{
		Track:        -1,
		DefaultLyric: "a",
		RestLyric:    "R",
	}
}

type tempoChange struct {
	tick int64
	bpm  float64
}

type tempoMap struct {
	ppq     float64
	changes []tempoChange
}

// ms converts an absolute tick to milliseconds, integrating over tempo changes.
func (m tempoMap) ms(tick int64) float64 {
	var (
		total    float64
		lastTick int64
		bpm      = DefaultTempo
	)
	for _, c := range m.changes {
		if c.tick >= tick {
			break
		}
		total += float64(c.tick-lastTick) * 60000 / (bpm * m.ppq)
		lastTick, bpm = c.tick, c.bpm
	}
	total += float64(tick-lastTick) * 60000 / (bpm * m.ppq)
	return math.Round(total*1e5) / 1e5
}

type rawNote struct {
	start, end int64
	key        uint8
	lyric      string
}

// ReadSMF imports a monophonic melody from a Standard MIDI File. Gaps between
// notes become rest notes so the returned timeline is contiguous; a note
// still sounding when the next one starts is cut at that start.
func ReadSMF(r io.Reader, opts SMFOptions) ([]Note, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read SMF: %w", err)
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.New("read SMF: only metric time format is supported")
	}

	tm := tempoMap{ppq: float64(ticks)}
	for _, track := range s.Tracks {
		var abs int64
		for _, ev := range track {
			abs += int64(ev.Delta)
			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) && bpm > 0 {
				tm.changes = append(tm.changes, tempoChange{tick: abs, bpm: bpm})
			}
		}
	}
	sort.SliceStable(tm.changes, func(i, j int) bool { return tm.changes[i].tick < tm.changes[j].tick })

	track, err := melodyTrack(s, opts.Track)
	if err != nil {
		return nil, err
	}
	raw := collectNotes(track)

	// Positions are a running sum of lengths so each note starts exactly
	// where the previous one ends.
	var (
		notes  []Note
		cursor float64 // end of the previous note on the tempo map
		pos    float64
	)
	push := func(length float64, lyric string) {
		notes = append(notes, Note{Position: pos, Length: length, Lyric: lyric})
		pos += length
	}
	for _, rn := range raw {
		start, end := tm.ms(rn.start), tm.ms(rn.end)
		if end <= start {
			continue
		}
		if start > cursor {
			push(start-cursor, opts.RestLyric)
		}
		lyric := rn.lyric
		if lyric == "" {
			lyric = opts.DefaultLyric
		}
		push(end-start, lyric)
		cursor = end
	}
	return notes, nil
}

// ReadSMFFile opens path and imports it with DefaultSMFOptions.
func ReadSMFFile(path string) ([]Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSMF(f, DefaultSMFOptions())
}

func melodyTrack(s *smf.SMF, index int) (smf.Track, error) {
	if index >= 0 {
		if index >= len(s.Tracks) {
			return nil, fmt.Errorf("track %d out of range, file has %d tracks", index, len(s.Tracks))
		}
		return s.Tracks[index], nil
	}
	for _, track := range s.Tracks {
		for _, ev := range track {
			var ch, key, vel uint8
			if midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				return track, nil
			}
		}
	}
	return nil, errors.New("no track contains notes")
}

func collectNotes(track smf.Track) []rawNote {
	var (
		notes   []rawNote
		active  = -1
		abs     int64
		lyricAt = make(map[int64]string)
	)
	for _, ev := range track {
		abs += int64(ev.Delta)
		msg := midi.Message(ev.Message)

		var text string
		if ev.Message.GetMetaLyric(&text) {
			lyricAt[abs] = strings.TrimSpace(text)
			continue
		}

		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			if active >= 0 {
				notes[active].end = abs
			}
			notes = append(notes, rawNote{start: abs, end: -1, key: key})
			active = len(notes) - 1
		case msg.GetNoteEnd(&ch, &key):
			if active >= 0 && notes[active].key == key {
				notes[active].end = abs
				active = -1
			}
		}
	}
	if active >= 0 {
		notes[active].end = abs
	}
	for i := range notes {
		notes[i].lyric = lyricAt[notes[i].start]
	}
	return notes
}
