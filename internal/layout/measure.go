package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/conneroisu/pencraft/internal/node"
)

// Text metrics used for estimates. The design tool does the real layout;
// these only need to be close enough to flag pages that outgrow their band.
const (
	lineHeight   = 1.4
	glyphAdvance = 0.55
	defaultIcon  = 16
)

// Extent is an estimated rendered size.
type Extent struct {
	W, H float64
}

// Measure estimates the rendered size of n. Fixed sizes are taken as given;
// hugging and filling sizes are derived from the children and the frame's
// auto-layout parameters.
func Measure(n node.Node) Extent {
	switch v := n.(type) {
	case *node.Text:
		size := v.FontSize.Or(node.DefaultFontSize)
		lines := strings.Split(v.Content, "\n")
		widest := 0
		for _, l := range lines {
			widest = max(widest, utf8.RuneCountInString(l))
		}
		return Extent{
			W: math.Ceil(float64(widest) * size * glyphAdvance),
			H: math.Ceil(float64(len(lines)) * size * lineHeight),
		}
	case *node.IconRef:
		return Extent{W: px(v.Width, defaultIcon), H: px(v.Height, defaultIcon)}
	case *node.Raw:
		w := gjson.GetBytes(v.Data, "width")
		h := gjson.GetBytes(v.Data, "height")
		return Extent{W: w.Float(), H: h.Float()}
	case *node.Frame:
		return measureFrame(v)
	}
	return Extent{}
}

func measureFrame(f *node.Frame) Extent {
	content := contentExtent(f)
	w, wok := f.Width.Pixels()
	h, hok := f.Height.Pixels()
	if !wok {
		w = content.W
	}
	if !hok {
		h = content.H
	}
	return Extent{W: w, H: h}
}

func contentExtent(f *node.Frame) Extent {
	top, right, bottom, left := f.Padding.Insets()
	gap := f.Gap.Or(0)

	var e Extent
	placed := 0
	for _, child := range f.Children {
		ce := Measure(child)
		switch f.Layout {
		case node.LayoutVertical:
			e.W = max(e.W, ce.W)
			e.H += ce.H
		case node.LayoutHorizontal:
			e.W += ce.W
			e.H = max(e.H, ce.H)
		default:
			x, y := 0.0, 0.0
			if cf, ok := child.(*node.Frame); ok {
				x, y, _ = cf.Position()
			}
			e.W = max(e.W, x+ce.W)
			e.H = max(e.H, y+ce.H)
			continue
		}
		placed++
	}
	if placed > 1 {
		switch f.Layout {
		case node.LayoutVertical:
			e.H += gap * float64(placed-1)
		case node.LayoutHorizontal:
			e.W += gap * float64(placed-1)
		}
	}
	e.W += left + right
	e.H += top + bottom
	return e
}

func px(s node.Size, fallback float64) float64 {
	if v, ok := s.Pixels(); ok {
		return v
	}
	return fallback
}

// Overflow reports a page whose estimated content height exceeds the band
// it was tiled into.
type Overflow struct {
	Page    string  `json:"page" yaml:"page"`
	ID      string  `json:"id" yaml:"id"`
	Content float64 `json:"content" yaml:"content"`
	Band    float64 `json:"band" yaml:"band"`
}

// Overflows checks every page. The page's own fixed height is ignored so
// that the content the page actually holds is compared against the band.
func Overflows(pages []*node.Frame, band float64) []Overflow {
	var out []Overflow
	for _, p := range pages {
		h := contentExtent(p).H
		if h > band {
			out = append(out, Overflow{Page: p.Name, ID: p.ID, Content: h, Band: band})
		}
	}
	return out
}
