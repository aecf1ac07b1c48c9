package sections

import (
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

// Blockquote shows a pull quote with attribution.
func Blockquote(c *layout.Composer) *node.Frame {
	quote := c.HStack(layout.Stack{Name: "Quote", Gap: 16},
		c.Rect("Rule", node.Px(3), node.FillContainer, border, node.Scalar{}),
		c.VStack(layout.Stack{Name: "Body", Gap: 8},
			c.Text("Simplicity is prerequisite for reliability.", layout.TextStyle{Size: 18, Style: "italic"}),
			c.Text("Edsger W. Dijkstra", layout.TextStyle{Size: 14, Fill: textMuted}),
		),
	)
	return c.Section("Blockquote", "Sets off quoted material from surrounding text.", quote)
}

var codeLines = []string{
	"func main() {",
	"    fmt.Println(\"hello\")",
	"}",
}

// Code shows inline code and a code block.
func Code(c *layout.Composer) *node.Frame {
	inline := c.HStack(layout.Stack{Name: "Inline", Padding: node.Pair(6, 2), Fill: mutedFill, CornerRadius: radiusSm},
		c.Text("go test ./...", layout.Mono))

	lines := make([]node.Node, 0, len(codeLines))
	for _, l := range codeLines {
		lines = append(lines, c.Text(l, layout.TextStyle{Size: 13, Family: "JetBrains Mono", Fill: textInverse}))
	}
	block := c.VStack(layout.Stack{
		Name:         "Block",
		Gap:          4,
		Padding:      node.Uniform(16),
		Width:        node.Px(420),
		Fill:         node.Token(tokens.BackgroundInverse),
		CornerRadius: radiusMd,
	}, lines...)

	return c.Section("Code", "Monospaced text for commands and source.",
		labeled(c, "Inline", inline),
		labeled(c, "Block", block),
	)
}

var iconNames = []string{
	"house", "search", "settings", "user", "bell", "mail",
	"calendar", "trash", "pencil", "download", "upload", "x",
}

// Icon shows the icon set at the default size.
func Icon(c *layout.Composer) *node.Frame {
	cells := make([]node.Node, 0, len(iconNames))
	for _, name := range iconNames {
		cells = append(cells, c.VStack(layout.Stack{Name: name, Gap: 6, Width: node.Px(72), Align: node.AlignCenter},
			c.Icon(name, 24, textPrimary),
			c.Text(name, layout.TextStyle{Size: 11, Fill: textMuted}),
		))
	}
	return c.Section("Icon", "Glyphs from the lucide icon font.", wrapRow(c, "Set", 16, cells...))
}

// Image shows placeholder media at common aspect ratios.
func Image(c *layout.Composer) *node.Frame {
	ratios := []struct {
		name string
		w, h float64
	}{
		{"16:9", 320, 180},
		{"4:3", 240, 180},
		{"1:1", 180, 180},
	}
	frames := make([]node.Node, 0, len(ratios))
	for _, r := range ratios {
		frames = append(frames, labeled(c, r.name, c.VStack(layout.Stack{
			Name:         "Placeholder",
			Width:        node.Px(r.w),
			Height:       node.Px(r.h),
			Align:        node.AlignCenter,
			Justify:      node.JustifyCenter,
			Fill:         mutedFill,
			CornerRadius: radiusLg,
			Clip:         true,
		}, c.Icon("image", 32, textMuted))))
	}
	return c.Section("Image", "Media frames with fixed aspect ratios.", row(c, "Ratios", 24, frames...))
}

func avatar(c *layout.Composer, initials string, size float64) *node.Frame {
	return c.HStack(layout.Stack{
		Name:         initials,
		Width:        node.Px(size),
		Height:       node.Px(size),
		Align:        node.AlignCenter,
		Justify:      node.JustifyCenter,
		Fill:         secondaryFill,
		CornerRadius: radiusFull,
		Clip:         true,
		Reusable:     true,
	}, c.Text(initials, layout.TextStyle{Size: size * 0.4, Weight: "500", Fill: textSecondary}))
}

// Avatar shows initials avatars in three sizes and an overlapping group.
func Avatar(c *layout.Composer) *node.Frame {
	sizes := row(c, "Sizes", 16, avatar(c, "JD", 32), avatar(c, "AK", 40), avatar(c, "MR", 56))

	var stacked []layout.Placement
	for i, initials := range []string{"AB", "CD", "EF", "+3"} {
		stacked = append(stacked, layout.At(avatar(c, initials, 40), float64(i)*28, 0))
	}
	group := c.Box(layout.Box{Name: "Group", Width: 3*28 + 40, Height: 40}, stacked...)

	return c.Section("Avatar", "Represents a person by initials.",
		labeled(c, "Sizes", sizes),
		labeled(c, "Group", group),
	)
}

// Card shows a content card with header, body and actions.
func Card(c *layout.Composer) *node.Frame {
	actions := c.HStack(layout.Stack{Name: "Actions", Gap: 8, Width: node.FillContainer, Justify: node.JustifyEnd},
		button(c, buttonVariants[2], buttonSizes[0], ""),
		button(c, buttonVariants[0], buttonSizes[0], ""),
	)
	card := c.VStack(layout.Stack{
		Name:         "Card",
		Gap:          16,
		Padding:      node.Uniform(24),
		Width:        node.Px(360),
		Fill:         surfaceFill,
		Stroke:       border,
		StrokeWidth:  1,
		CornerRadius: radiusLg,
		Reusable:     true,
	},
		c.VStack(layout.Stack{Name: "Header", Gap: 4},
			c.Text("Create project", layout.Heading),
			c.Text("Deploy your new project in one click.", layout.TextStyle{Fill: textSecondary}),
		),
		field(c, inputStates[1], 312),
		actions,
	)
	return c.Section("Card", "Groups related content and actions.", card)
}

var tableColumns = []struct {
	title string
	width float64
}{
	{"Invoice", 120},
	{"Status", 120},
	{"Method", 160},
	{"Amount", 120},
}

var tableRows = [][]string{
	{"INV001", "Paid", "Credit Card", "$250.00"},
	{"INV002", "Pending", "PayPal", "$150.00"},
	{"INV003", "Unpaid", "Bank Transfer", "$350.00"},
	{"INV004", "Paid", "Credit Card", "$450.00"},
}

// DataTable shows a bordered table with a header row.
func DataTable(c *layout.Composer) *node.Frame {
	tableRow := func(name string, cells []string, header bool) *node.Frame {
		style := layout.TextStyle{Size: 14}
		fill := node.Paint{}
		if header {
			style = layout.TextStyle{Size: 13, Weight: "500", Fill: textMuted}
			fill = mutedFill
		}
		children := make([]node.Node, len(cells))
		for i, text := range cells {
			children[i] = c.HStack(layout.Stack{
				Name:    tableColumns[i].title,
				Padding: node.Pair(16, 0),
				Width:   node.Px(tableColumns[i].width),
				Height:  node.Px(44),
				Align:   node.AlignCenter,
			}, c.Text(text, style))
		}
		return c.HStack(layout.Stack{Name: name, Fill: fill}, children...)
	}

	titles := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		titles[i] = col.title
	}
	rows := []node.Node{tableRow("Header", titles, true)}
	for _, r := range tableRows {
		rows = append(rows, tableRow(r[0], r, false))
	}
	table := c.VStack(layout.Stack{
		Name:         "Table",
		Stroke:       border,
		StrokeWidth:  1,
		CornerRadius: radiusMd,
		Clip:         true,
	}, rows...)

	return c.Section("Data Table", "Tabular records with column headers.", table)
}
