package layout

import (
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

// Default page geometry.
const (
	DefaultPageWidth   = 1440
	DefaultPageHeight  = 2000
	DefaultBandHeight  = 2100
	DefaultPagePadding = 64
	DefaultPageGap     = 64
)

// PageSpec sizes a page. Zero fields take the defaults.
type PageSpec struct {
	Width   float64
	Height  float64
	Padding float64
	Gap     float64
}

func (s PageSpec) withDefaults() PageSpec {
	if s.Width <= 0 {
		s.Width = DefaultPageWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultPageHeight
	}
	if s.Padding <= 0 {
		s.Padding = DefaultPagePadding
	}
	if s.Gap <= 0 {
		s.Gap = DefaultPageGap
	}
	return s
}

// Page builds a top-level page frame positioned at the tiler's next slot.
// Pages are vertical stacks so appended sections flow downward.
func (c *Composer) Page(name string, spec PageSpec, tiler *Tiler) *node.Frame {
	spec = spec.withDefaults()
	f := node.NewFrame(c.NextID(), name, node.Px(spec.Width), node.Px(spec.Height))
	f.Layout = node.LayoutVertical
	f.Gap = node.Num(spec.Gap)
	f.Padding = node.Uniform(spec.Padding)
	f.Fill = node.Token(tokens.BackgroundPrimary)
	f.Clip = true
	c.owned[f] = true
	return f.At(0, tiler.Next())
}

// Tiler hands out vertical offsets for pages, one band apart.
type Tiler struct {
	Band float64
	next float64
}

// NewTiler returns a tiler starting at y = 0.
func NewTiler(band float64) *Tiler {
	if band <= 0 {
		band = DefaultBandHeight
	}
	return &Tiler{Band: band}
}

// Next returns the y offset of the next page.
func (t *Tiler) Next() float64 {
	y := t.next
	t.next += t.Band
	return y
}

// ResumeAfter continues tiling one band below the lowest existing page.
// Children without a position are ignored.
func (t *Tiler) ResumeAfter(pages []*node.Frame) {
	found := false
	lowest := 0.0
	for _, p := range pages {
		_, y, ok := p.Position()
		if !ok {
			continue
		}
		if !found || y > lowest {
			lowest = y
		}
		found = true
	}
	if found && lowest+t.Band > t.next {
		t.next = lowest + t.Band
	}
}
