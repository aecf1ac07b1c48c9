package sections

import (
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

type buttonVariant struct {
	name   string
	fill   node.Paint
	stroke node.Paint
	text   node.Paint
}

var buttonVariants = []buttonVariant{
	{name: "Primary", fill: accent, text: onAccent},
	{name: "Secondary", fill: node.Token(tokens.AccentSecondary), text: textPrimary},
	{name: "Outline", fill: surfaceFill, stroke: border, text: textPrimary},
	{name: "Ghost", text: textPrimary},
	{name: "Destructive", fill: node.Token(tokens.Destructive), text: white},
}

type buttonSize struct {
	name     string
	height   float64
	padX     float64
	fontSize float64
}

var buttonSizes = []buttonSize{
	{"Small", 32, 12, 13},
	{"Medium", 40, 16, 14},
	{"Large", 48, 24, 16},
}

func button(c *layout.Composer, v buttonVariant, s buttonSize, icon string) *node.Frame {
	children := []node.Node{}
	if icon != "" {
		children = append(children, c.Icon(icon, s.fontSize+2, v.text))
	}
	children = append(children, c.Text(v.name, layout.TextStyle{Size: s.fontSize, Weight: "500", Fill: v.text}))

	stroke := 0.0
	if !v.stroke.IsZero() {
		stroke = 1
	}
	return c.HStack(layout.Stack{
		Name:         v.name + " / " + s.name,
		Gap:          8,
		Padding:      node.Pair(s.padX, 0),
		Height:       node.Px(s.height),
		Align:        node.AlignCenter,
		Justify:      node.JustifyCenter,
		Fill:         v.fill,
		Stroke:       v.stroke,
		StrokeWidth:  stroke,
		CornerRadius: radiusMd,
		Reusable:     true,
	}, children...)
}

// Button shows every variant at every size: one row per variant, one
// column per size.
func Button(c *layout.Composer) *node.Frame {
	header := []node.Node{c.Rect("Corner", node.Px(120), node.Px(16), node.Paint{}, node.Scalar{})}
	for _, s := range buttonSizes {
		header = append(header, c.Text(s.name, layout.TextStyle{Size: 12, Fill: textMuted}))
	}
	rows := []node.Node{row(c, "Sizes", 24, header...)}

	for _, v := range buttonVariants {
		cells := []node.Node{c.Text(v.name, layout.TextStyle{Size: 13, Weight: "500", Fill: textSecondary})}
		for _, s := range buttonSizes {
			cells = append(cells, button(c, v, s, ""))
		}
		rows = append(rows, row(c, v.name, 24, cells...))
	}

	withIcon := row(c, "With Icon", 16,
		button(c, buttonVariants[0], buttonSizes[1], "plus"),
		button(c, buttonVariants[2], buttonSizes[1], "download"),
	)

	return c.Section("Button", "Five variants across three sizes.",
		column(c, "Matrix", 16, rows...),
		labeled(c, "With icon", withIcon),
	)
}

var badgeVariants = []struct {
	name   string
	fill   node.Paint
	text   node.Paint
	stroke node.Paint
}{
	{"Default", accent, onAccent, node.Paint{}},
	{"Secondary", secondaryFill, textPrimary, node.Paint{}},
	{"Outline", node.Paint{}, textPrimary, border},
	{"Destructive", node.Token(tokens.Destructive), white, node.Paint{}},
	{"Success", node.Token(tokens.Success), white, node.Paint{}},
}

// Badge shows the badge variants.
func Badge(c *layout.Composer) *node.Frame {
	badges := make([]node.Node, 0, len(badgeVariants))
	for _, v := range badgeVariants {
		stroke := 0.0
		if !v.stroke.IsZero() {
			stroke = 1
		}
		badges = append(badges, c.HStack(layout.Stack{
			Name:         v.name,
			Padding:      node.Pair(10, 2),
			Fill:         v.fill,
			Stroke:       v.stroke,
			StrokeWidth:  stroke,
			CornerRadius: radiusFull,
			Reusable:     true,
		}, c.Text(v.name, layout.TextStyle{Size: 12, Weight: "600", Fill: v.text})))
	}
	return c.Section("Badge", "Compact status labels.", row(c, "Variants", 12, badges...))
}

// ToggleGroup shows single and multiple selection groups.
func ToggleGroup(c *layout.Composer) *node.Frame {
	item := func(icon string, on bool) *node.Frame {
		fill := node.Paint{}
		if on {
			fill = mutedFill
		}
		return c.HStack(layout.Stack{
			Name:         icon,
			Width:        node.Px(40),
			Height:       node.Px(40),
			Align:        node.AlignCenter,
			Justify:      node.JustifyCenter,
			Fill:         fill,
			CornerRadius: radiusSm,
		}, c.Icon(icon, 16, textPrimary))
	}
	group := func(name string, on ...bool) *node.Frame {
		icons := []string{"bold", "italic", "underline"}
		items := make([]node.Node, len(icons))
		for i, icon := range icons {
			items[i] = item(icon, on[i])
		}
		return c.HStack(layout.Stack{
			Name:         name,
			Gap:          4,
			Padding:      node.Uniform(4),
			Stroke:       border,
			StrokeWidth:  1,
			CornerRadius: radiusMd,
		}, items...)
	}

	return c.Section("Toggle Group", "A set of two-state buttons.",
		row(c, "States", 32,
			labeled(c, "Single", group("Single", true, false, false)),
			labeled(c, "Multiple", group("Multiple", true, false, true)),
			labeled(c, "None", group("None", false, false, false)),
		),
	)
}
