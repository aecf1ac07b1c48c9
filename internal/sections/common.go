// Package sections holds one specimen builder per UI component family.
//
// Builders are pure functions of a Composer: they build a section frame
// showing the family's variants and states, and never touch the document.
// Which page each section lands on is recorded by Register.
package sections

import (
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

// Shared paints.
var (
	textPrimary   = node.Token(tokens.TextPrimary)
	textSecondary = node.Token(tokens.TextSecondary)
	textMuted     = node.Token(tokens.TextMuted)
	textInverse   = node.Token(tokens.TextInverse)
	surfaceFill   = node.Token(tokens.BackgroundPrimary)
	mutedFill     = node.Token(tokens.BackgroundMuted)
	secondaryFill = node.Token(tokens.BackgroundSecondary)
	border        = node.Token(tokens.BorderDefault)
	accent        = node.Token(tokens.AccentPrimary)
	onAccent      = node.Token(tokens.AccentForeground)
	white         = node.Color("#FFFFFF")
)

// Shared radii.
var (
	radiusSm   = node.Ref(tokens.RadiusSmall)
	radiusMd   = node.Ref(tokens.RadiusMedium)
	radiusLg   = node.Ref(tokens.RadiusLarge)
	radiusFull = node.Ref(tokens.RadiusFull)
)

// labeled stacks a caption above a specimen.
func labeled(c *layout.Composer, label string, specimen node.Node) *node.Frame {
	return c.VStack(layout.Stack{Name: label, Gap: 8}, c.Text(label, layout.Caption), specimen)
}

// row lays specimens out left to right.
func row(c *layout.Composer, name string, gap float64, children ...node.Node) *node.Frame {
	return c.HStack(layout.Stack{Name: name, Gap: gap, Align: node.AlignCenter}, children...)
}

// wrapRow lays specimens out left to right, wrapping at the section width.
func wrapRow(c *layout.Composer, name string, gap float64, children ...node.Node) *node.Frame {
	return c.HStack(layout.Stack{Name: name, Gap: gap, Wrap: true, Width: node.FillContainer}, children...)
}

// column lays specimens out top to bottom.
func column(c *layout.Composer, name string, gap float64, children ...node.Node) *node.Frame {
	return c.VStack(layout.Stack{Name: name, Gap: gap}, children...)
}

// surface is a bordered card-like container.
func surface(c *layout.Composer, name string, width float64, children ...node.Node) *node.Frame {
	w := node.HugContents
	if width > 0 {
		w = node.Px(width)
	}
	return c.VStack(layout.Stack{
		Name:         name,
		Gap:          12,
		Padding:      node.Uniform(16),
		Width:        w,
		Fill:         surfaceFill,
		Stroke:       border,
		StrokeWidth:  1,
		CornerRadius: radiusMd,
	}, children...)
}

// label is body text in the given paint.
func label(c *layout.Composer, content string, fill node.Paint) *node.Text {
	return c.Text(content, layout.TextStyle{Fill: fill})
}

// strong is a medium-weight label.
func strong(c *layout.Composer, content string) *node.Text {
	return c.Text(content, layout.TextStyle{Weight: "500"})
}
