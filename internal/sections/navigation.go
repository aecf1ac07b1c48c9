package sections

import (
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
)

// Tabs shows a tab list with the first tab active and its panel.
func Tabs(c *layout.Composer) *node.Frame {
	tabs := []string{"Account", "Password", "Notifications"}
	triggers := make([]node.Node, 0, len(tabs))
	for i, name := range tabs {
		fill, ink := node.Paint{}, textMuted
		if i == 0 {
			fill, ink = surfaceFill, textPrimary
		}
		triggers = append(triggers, c.HStack(layout.Stack{
			Name:         name,
			Padding:      node.Pair(12, 6),
			Fill:         fill,
			CornerRadius: radiusSm,
		}, c.Text(name, layout.TextStyle{Weight: "500", Fill: ink})))
	}
	list := c.HStack(layout.Stack{Name: "List", Gap: 4, Padding: node.Uniform(4), Fill: mutedFill, CornerRadius: radiusMd}, triggers...)
	panel := surface(c, "Panel", 400,
		strong(c, "Account"),
		label(c, "Make changes to your account here.", textSecondary),
	)
	return c.Section("Tabs", "Switches between related views.", column(c, "Tabs", 8, list, panel))
}

// Breadcrumb shows a trail ending at the current page.
func Breadcrumb(c *layout.Composer) *node.Frame {
	trail := []string{"Home", "Components", "Breadcrumb"}
	items := []node.Node{}
	for i, name := range trail {
		if i > 0 {
			items = append(items, c.Icon("chevron-right", 14, textMuted))
		}
		ink := textMuted
		if i == len(trail)-1 {
			ink = textPrimary
		}
		items = append(items, c.Text(name, layout.TextStyle{Fill: ink}))
	}
	return c.Section("Breadcrumb", "Shows where a page sits in the hierarchy.", row(c, "Trail", 8, items...))
}

// Announcement shows a full-width banner.
func Announcement(c *layout.Composer) *node.Frame {
	banner := c.HStack(layout.Stack{
		Name:         "Banner",
		Gap:          12,
		Padding:      node.Pair(16, 12),
		Width:        node.FillContainer,
		Align:        node.AlignCenter,
		Justify:      node.JustifyCenter,
		Fill:         accent,
		CornerRadius: radiusMd,
		Reusable:     true,
	},
		c.HStack(layout.Stack{Name: "Tag", Padding: node.Pair(8, 2), Fill: white, CornerRadius: radiusFull},
			c.Text("New", layout.TextStyle{Size: 12, Weight: "600", Fill: accent})),
		c.Text("Pencraft 2.0 is out with reusable components.", layout.TextStyle{Weight: "500", Fill: onAccent}),
		c.Icon("arrow-right", 16, onAccent),
	)
	return c.Section("Announcement", "A site-wide banner for news.", banner)
}
