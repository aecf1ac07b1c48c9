package sections

import (
	"fmt"

	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

type typeStep struct {
	name   string
	size   float64
	weight string
}

var headingScale = []typeStep{
	{"H1", 48, "800"},
	{"H2", 36, "700"},
	{"H3", 30, "600"},
	{"H4", 24, "600"},
	{"H5", 20, "600"},
	{"H6", 16, "600"},
}

// Heading shows the heading scale with each level's metrics.
func Heading(c *layout.Composer) *node.Frame {
	rows := make([]node.Node, 0, len(headingScale))
	for _, step := range headingScale {
		rows = append(rows, c.HStack(layout.Stack{Name: step.name, Gap: 24, Align: node.AlignCenter},
			c.Text(fmt.Sprintf("%s · %gpx / %s", step.name, step.size, step.weight),
				layout.TextStyle{Size: 12, Family: "JetBrains Mono", Fill: textMuted}),
			c.Text("The quick brown fox", layout.TextStyle{Name: step.name, Size: step.size, Weight: step.weight}),
		))
	}
	return c.Section("Heading", "Six heading levels for page and section titles.",
		column(c, "Scale", 16, rows...))
}

var textStyles = []struct {
	name  string
	style layout.TextStyle
	copy  string
}{
	{"Lead", layout.TextStyle{Size: 20, Fill: textSecondary}, "A lead paragraph introduces the content below it."},
	{"Large", layout.TextStyle{Size: 18, Weight: "600"}, "Large text draws attention."},
	{"Body", layout.TextStyle{Size: 16}, "Body text carries most of the content on a page."},
	{"Small", layout.TextStyle{Size: 14, Weight: "500"}, "Small text for labels and metadata."},
	{"Muted", layout.TextStyle{Size: 14, Fill: textMuted}, "Muted text for secondary detail."},
	{"Italic", layout.TextStyle{Size: 16, Style: "italic"}, "Italic text for emphasis and citations."},
	{"Link", layout.TextStyle{Size: 16, Weight: "500", Fill: node.Token(tokens.TextLink)}, "Inline link"},
}

// Text shows the paragraph styles.
func Text(c *layout.Composer) *node.Frame {
	rows := make([]node.Node, 0, len(textStyles))
	for _, s := range textStyles {
		style := s.style
		style.Name = s.name
		rows = append(rows, labeled(c, s.name, c.Text(s.copy, style)))
	}
	return c.Section("Text", "Paragraph styles for running copy.",
		column(c, "Styles", 20, rows...))
}
