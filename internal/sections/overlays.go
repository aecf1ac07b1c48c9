package sections

import (
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

// Dialog shows a modal over a dimmed backdrop.
func Dialog(c *layout.Composer) *node.Frame {
	const (
		width  = 720
		height = 400
	)
	modal := c.VStack(layout.Stack{
		Name:         "Modal",
		Gap:          20,
		Padding:      node.Uniform(24),
		Width:        node.Px(420),
		Fill:         surfaceFill,
		CornerRadius: radiusLg,
		Reusable:     true,
	},
		c.HStack(layout.Stack{Name: "Header", Width: node.FillContainer, Justify: node.JustifySpaceBetween},
			c.Text("Delete project?", layout.Heading),
			c.Icon("x", 16, textMuted),
		),
		c.Text("This permanently removes the project and its deployments.", layout.TextStyle{Fill: textSecondary}),
		c.HStack(layout.Stack{Name: "Footer", Gap: 8, Width: node.FillContainer, Justify: node.JustifyEnd},
			button(c, buttonVariants[2], buttonSizes[1], ""),
			button(c, buttonVariants[4], buttonSizes[1], ""),
		),
	)
	stage := c.Box(layout.Box{Name: "Stage", Width: width, Height: height, Fill: mutedFill, CornerRadius: radiusLg, Clip: true},
		layout.At(c.Rect("Backdrop", node.Px(width), node.Px(height), node.Token(tokens.BackgroundOverlay), node.Scalar{}), 0, 0),
		layout.At(modal, 150, 110),
	)
	return c.Section("Dialog", "A modal window that interrupts the current task.", stage)
}

var commandGroups = []struct {
	heading string
	items   [][2]string
}{
	{"Suggestions", [][2]string{{"calendar", "Calendar"}, {"smile", "Search Emoji"}, {"calculator", "Calculator"}}},
	{"Settings", [][2]string{{"user", "Profile"}, {"credit-card", "Billing"}, {"settings", "Settings"}}},
}

// Command shows a command palette with grouped results.
func Command(c *layout.Composer) *node.Frame {
	search := c.HStack(layout.Stack{Name: "Search", Gap: 8, Padding: node.Pair(12, 10), Width: node.FillContainer, Align: node.AlignCenter},
		c.Icon("search", 16, textMuted),
		label(c, "Type a command or search...", textMuted),
	)
	children := []node.Node{search, c.Rect("Divider", node.FillContainer, node.Px(1), border, node.Scalar{})}

	first := true
	for _, g := range commandGroups {
		items := []node.Node{c.Text(g.heading, layout.TextStyle{Name: "Heading", Size: 12, Weight: "500", Fill: textMuted})}
		for _, it := range g.items {
			fill := node.Paint{}
			if first {
				fill, first = mutedFill, false
			}
			items = append(items, c.HStack(layout.Stack{
				Name:         it[1],
				Gap:          8,
				Padding:      node.Pair(8, 6),
				Width:        node.FillContainer,
				Align:        node.AlignCenter,
				Fill:         fill,
				CornerRadius: radiusSm,
			}, c.Icon(it[0], 16, textSecondary), label(c, it[1], textPrimary)))
		}
		children = append(children, c.VStack(layout.Stack{Name: g.heading, Gap: 2, Padding: node.Uniform(8), Width: node.FillContainer}, items...))
	}

	palette := c.VStack(layout.Stack{
		Name:         "Palette",
		Width:        node.Px(420),
		Fill:         surfaceFill,
		Stroke:       border,
		StrokeWidth:  1,
		CornerRadius: radiusLg,
		Clip:         true,
	}, children...)
	return c.Section("Command", "Searchable list of actions.", palette)
}

// Tooltip shows a tip anchored above its trigger.
func Tooltip(c *layout.Composer) *node.Frame {
	tip := c.HStack(layout.Stack{
		Name:         "Tip",
		Padding:      node.Pair(10, 6),
		Fill:         node.Token(tokens.BackgroundInverse),
		CornerRadius: radiusSm,
	}, c.Text("Add to library", layout.TextStyle{Size: 12, Fill: textInverse}))
	trigger := button(c, buttonVariants[2], buttonSizes[1], "plus")

	return c.Section("Tooltip", "A short label shown on hover.",
		c.VStack(layout.Stack{Name: "Anchored", Gap: 8, Align: node.AlignCenter}, tip, trigger))
}
