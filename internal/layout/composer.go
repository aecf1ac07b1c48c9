// Package layout assembles node trees from declarative descriptions.
//
// Stacks record auto-layout parameters (direction, gap, padding, alignment,
// wrap) and leave child placement to the design tool, so their children
// never carry coordinates. Boxes place children at explicit offsets from
// the box origin for specimens that need overlap, such as a thumb resting
// on a track. Pages are tiled down a shared canvas by a Tiler.
package layout

import (
	"github.com/conneroisu/pencraft/internal/idalloc"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

// Composer builds nodes whose ids come from one allocator under one prefix.
// Every node a Composer adopts into a parent is owned by exactly one parent;
// adopting a node a second time adopts a copy with fresh ids instead.
type Composer struct {
	ids    *idalloc.Allocator
	prefix string
	owned  map[node.Node]bool
}

// NewComposer returns a composer issuing ids under prefix.
func NewComposer(ids *idalloc.Allocator, prefix string) *Composer {
	return &Composer{
		ids:    ids,
		prefix: prefix,
		owned:  make(map[node.Node]bool),
	}
}

// WithPrefix returns a composer sharing the allocator and ownership record
// but issuing ids under a different prefix.
func (c *Composer) WithPrefix(prefix string) *Composer {
	return &Composer{ids: c.ids, prefix: prefix, owned: c.owned}
}

// Prefix returns the id prefix in use.
func (c *Composer) Prefix() string { return c.prefix }

// NextID allocates a fresh id.
func (c *Composer) NextID() string {
	return c.ids.Next(c.prefix)
}

// Stack describes an auto-layout frame. Unset sizes hug their contents.
type Stack struct {
	Name         string
	Direction    node.Layout
	Gap          float64
	Padding      node.Padding
	Align        node.Align
	Justify      node.Justify
	Wrap         bool
	Width        node.Size
	Height       node.Size
	Fill         node.Paint
	Stroke       node.Paint
	StrokeWidth  float64
	CornerRadius node.Scalar
	Clip         bool
	Reusable     bool
}

// Stack builds an auto-layout frame around children. Positions on frame
// children are dropped, since the tool resolves them from the layout.
func (c *Composer) Stack(s Stack, children ...node.Node) *node.Frame {
	if s.Direction == node.LayoutNone {
		s.Direction = node.LayoutVertical
	}
	f := node.NewFrame(c.NextID(), s.Name, orHug(s.Width), orHug(s.Height))
	f.Layout = s.Direction
	if s.Gap > 0 {
		f.Gap = node.Num(s.Gap)
	}
	f.Padding = s.Padding
	f.AlignItems = s.Align
	f.JustifyContent = s.Justify
	f.Wrap = s.Wrap
	f.Fill = s.Fill
	f.Stroke = s.Stroke
	if s.StrokeWidth > 0 {
		f.StrokeThickness = node.Num(s.StrokeWidth)
	}
	f.CornerRadius = s.CornerRadius
	f.Clip = s.Clip
	f.Reusable = s.Reusable

	for _, child := range children {
		if child == nil {
			continue
		}
		child = c.adopt(child)
		if frame, ok := child.(*node.Frame); ok {
			frame.X, frame.Y = nil, nil
		}
		f.Append(child)
	}
	return f
}

// VStack is Stack with a vertical direction.
func (c *Composer) VStack(s Stack, children ...node.Node) *node.Frame {
	s.Direction = node.LayoutVertical
	return c.Stack(s, children...)
}

// HStack is Stack with a horizontal direction.
func (c *Composer) HStack(s Stack, children ...node.Node) *node.Frame {
	s.Direction = node.LayoutHorizontal
	return c.Stack(s, children...)
}

// Placement positions a frame inside a Box.
type Placement struct {
	Frame *node.Frame
	X, Y  float64
}

// At places f at (x, y) relative to its Box's origin.
func At(f *node.Frame, x, y float64) Placement {
	return Placement{Frame: f, X: x, Y: y}
}

// Box describes a frame without auto-layout whose children are placed at
// explicit coordinates.
type Box struct {
	Name         string
	Width        float64
	Height       float64
	Fill         node.Paint
	Stroke       node.Paint
	CornerRadius node.Scalar
	Clip         bool
}

// Box builds an absolutely positioned frame. Later placements stack above
// earlier ones.
func (c *Composer) Box(b Box, placements ...Placement) *node.Frame {
	f := node.NewFrame(c.NextID(), b.Name, node.Px(b.Width), node.Px(b.Height))
	f.Fill = b.Fill
	f.Stroke = b.Stroke
	f.CornerRadius = b.CornerRadius
	f.Clip = b.Clip
	for _, p := range placements {
		if p.Frame == nil {
			continue
		}
		child := c.adopt(p.Frame).(*node.Frame)
		child.At(p.X, p.Y)
		f.Append(child)
	}
	return f
}

// Rect builds a childless frame, the building block for swatches, tracks
// and placeholder imagery.
func (c *Composer) Rect(name string, width, height node.Size, fill node.Paint, radius node.Scalar) *node.Frame {
	f := node.NewFrame(c.NextID(), name, width, height)
	f.Fill = fill
	f.CornerRadius = radius
	return f
}

// TextStyle overrides text defaults. Zero fields keep the defaults.
type TextStyle struct {
	Name   string
	Size   float64
	Weight string
	Family string
	Style  string
	Fill   node.Paint
}

// Common text styles.
var (
	Title   = TextStyle{Size: 24, Weight: "600"}
	Heading = TextStyle{Size: 18, Weight: "600"}
	Body    = TextStyle{}
	Caption = TextStyle{Size: 12, Fill: node.Token(tokens.TextMuted)}
	Mono    = TextStyle{Size: 13, Family: "JetBrains Mono"}
)

// Text builds a text node.
func (c *Composer) Text(content string, style TextStyle) *node.Text {
	t := node.NewText(c.NextID(), content)
	t.Name = style.Name
	if style.Size > 0 {
		t.FontSize = node.Num(style.Size)
	}
	if style.Weight != "" {
		t.FontWeight = style.Weight
	}
	if style.Family != "" {
		t.FontFamily = style.Family
	}
	t.FontStyle = style.Style
	if !style.Fill.IsZero() {
		t.Fill = style.Fill
	}
	return t
}

// Icon builds an icon glyph of the given size. A zero fill keeps the
// default text color.
func (c *Composer) Icon(name string, size float64, fill node.Paint) *node.IconRef {
	i := node.NewIcon(c.NextID(), name, size)
	if !fill.IsZero() {
		i.Fill = fill
	}
	return i
}

// Section wraps a specimen body with its title and description. Sections
// are the unit appended to pages.
func (c *Composer) Section(title, description string, body ...node.Node) *node.Frame {
	header := []node.Node{c.Text(title, TextStyle{Name: "Title", Size: 24, Weight: "600"})}
	if description != "" {
		header = append(header, c.Text(description, TextStyle{Name: "Description", Fill: node.Token(tokens.TextSecondary)}))
	}
	return c.VStack(Stack{Name: title, Gap: 24, Width: node.FillContainer},
		append([]node.Node{c.VStack(Stack{Name: "Header", Gap: 4}, header...)}, body...)...,
	)
}

// adopt returns n if it has no parent yet, or a copy with fresh ids.
func (c *Composer) adopt(n node.Node) node.Node {
	if c.owned[n] {
		n = c.reissue(node.Clone(n))
	}
	c.owned[n] = true
	return n
}

// reissue gives every node of a copied subtree a fresh id.
func (c *Composer) reissue(n node.Node) node.Node {
	_ = node.Walk(n, func(n node.Node) error {
		switch v := n.(type) {
		case *node.Frame:
			v.ID = c.NextID()
		case *node.Text:
			v.ID = c.NextID()
		case *node.IconRef:
			v.ID = c.NextID()
		}
		return nil
	})
	return n
}

func orHug(s node.Size) node.Size {
	if s.IsZero() {
		return node.HugContents
	}
	return s
}
