package sections

import (
	"fmt"

	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

type severity struct {
	name    string
	icon    string
	color   node.Paint
	title   string
	message string
}

var severities = []severity{
	{"Info", "info", node.Token(tokens.Info), "Heads up", "A new version is available."},
	{"Success", "circle-check", node.Token(tokens.Success), "Saved", "Your changes have been saved."},
	{"Warning", "triangle-alert", node.Token(tokens.Warning), "Storage almost full", "You have used 90% of your quota."},
	{"Error", "circle-x", node.Token(tokens.Destructive), "Upload failed", "The file exceeds the size limit."},
}

func message(c *layout.Composer, s severity, width float64) *node.Frame {
	return c.HStack(layout.Stack{
		Name:         s.name,
		Gap:          12,
		Padding:      node.Uniform(16),
		Width:        node.Px(width),
		Fill:         surfaceFill,
		Stroke:       s.color,
		StrokeWidth:  1,
		CornerRadius: radiusMd,
		Reusable:     true,
	},
		c.Icon(s.icon, 18, s.color),
		c.VStack(layout.Stack{Name: "Content", Gap: 4, Width: node.FillContainer},
			strong(c, s.title),
			c.Text(s.message, layout.TextStyle{Fill: textSecondary}),
		),
	)
}

// Alert shows an inline callout per severity.
func Alert(c *layout.Composer) *node.Frame {
	alerts := make([]node.Node, 0, len(severities))
	for _, s := range severities {
		alerts = append(alerts, message(c, s, 560))
	}
	return c.Section("Alert", "Inline callouts for contextual messages.", column(c, "Severities", 12, alerts...))
}

// Toast shows one transient notification per severity.
func Toast(c *layout.Composer) *node.Frame {
	toasts := make([]node.Node, 0, len(severities))
	for _, s := range severities {
		t := message(c, s, 360)
		t.Append(c.Icon("x", 14, textMuted))
		toasts = append(toasts, t)
	}
	return c.Section("Toast", "Brief notifications that dismiss themselves.", wrapRow(c, "Severities", 16, toasts...))
}

// Progress shows determinate bars at several values.
func Progress(c *layout.Composer) *node.Frame {
	const width = 320
	bars := []node.Node{}
	for _, v := range []float64{0.1, 0.45, 0.8, 1} {
		bars = append(bars, labeled(c, fmt.Sprintf("%d%%", int(v*100)),
			c.Box(layout.Box{Name: "Bar", Width: width, Height: 8, Fill: mutedFill, CornerRadius: radiusFull, Clip: true},
				layout.At(c.Rect("Indicator", node.Px(width*v), node.Px(8), accent, radiusFull), 0, 0),
			)))
	}
	return c.Section("Progress", "Shows how far a task has advanced.", column(c, "Values", 16, bars...))
}
