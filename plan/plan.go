// Package plan stores a segmentation result together with the inputs that
// produced it.
package plan

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/xid"

	"github.com/ieee0824/ust2lab-go/segment"
)

type ID string

var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func newID() ID {
	return ID(xid.New().String())
}

// Plan is a timing plan for one sample.
type Plan struct {
	ID       ID
	Created  time.Time
	Sample   string
	Source   string // score file the notes came from
	Config   segment.Config
	Segments []segment.Segment
}

// New wraps segs in a Plan with a fresh ID.
func New(sample, source string, cfg segment.Config, segs []segment.Segment) *Plan {
	return &Plan{
		ID:       newID(),
		Created:  time.Now().UTC(),
		Sample:   sample,
		Source:   source,
		Config:   cfg,
		Segments: segs,
	}
}

// End returns the end of the last segment, or 0 for an empty plan.
func (p *Plan) End() float64 {
	if len(p.Segments) == 0 {
		return 0
	}
	return p.Segments[len(p.Segments)-1].End
}

type planMarshal struct {
	ID       ID               `cbor:"id"`
	Created  time.Time        `cbor:"created"`
	Sample   string           `cbor:"sample"`
	Source   string           `cbor:"source,omitempty"`
	Config   segment.Config   `cbor:"config"`
	Segments []segmentMarshal `cbor:"segments"`
}

type segmentMarshal struct {
	Name   string    `cbor:"name"`
	Start  float64   `cbor:"start"`
	End    float64   `cbor:"end"`
	Points []float64 `cbor:"points"`
	Extras []string  `cbor:"extras"`
}

// MarshalCBOR stores the sample once at plan level instead of per segment.
func (p *Plan) MarshalCBOR() ([]byte, error) {
	pm := planMarshal{
		ID:       p.ID,
		Created:  p.Created,
		Sample:   p.Sample,
		Source:   p.Source,
		Config:   p.Config,
		Segments: make([]segmentMarshal, len(p.Segments)),
	}
	for i, s := range p.Segments {
		pm.Segments[i] = segmentMarshal{Name: s.Name, Start: s.Start, End: s.End, Points: s.Points, Extras: s.Extras}
	}
	return encMode.Marshal(pm)
}

func (p *Plan) UnmarshalCBOR(data []byte) error {
	var pm planMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return err
	}
	p.ID = pm.ID
	p.Created = pm.Created
	p.Sample = pm.Sample
	p.Source = pm.Source
	p.Config = pm.Config
	p.Segments = make([]segment.Segment, len(pm.Segments))
	for i, s := range pm.Segments {
		p.Segments[i] = segment.Segment{
			Sample: pm.Sample,
			Name:   s.Name,
			Start:  s.Start,
			End:    s.End,
			Points: s.Points,
			Extras: s.Extras,
		}
	}
	return nil
}

// Write encodes p to w.
func Write(w io.Writer, p *Plan) error {
	return encMode.NewEncoder(w).Encode(p)
}

// Read decodes a plan from r.
func Read(r io.Reader) (*Plan, error) {
	var p Plan
	if err := cbor.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// Save writes p to path.
func Save(path string, p *Plan) error {
	b, err := encMode.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Load reads a plan from path.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := cbor.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}
	return &p, nil
}
