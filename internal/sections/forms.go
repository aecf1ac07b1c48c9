package sections

import (
	"fmt"

	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/tokens"
)

type fieldState struct {
	name        string
	value       string
	stroke      node.Paint
	fill        node.Paint
	text        node.Paint
	helper      string
	helperColor node.Paint
}

var inputStates = []fieldState{
	{name: "Default", value: "Placeholder", stroke: border, fill: surfaceFill, text: textMuted},
	{name: "Filled", value: "jane@example.com", stroke: border, fill: surfaceFill, text: textPrimary},
	{name: "Focused", value: "jane@", stroke: node.Token(tokens.BorderFocus), fill: surfaceFill, text: textPrimary},
	{name: "Error", value: "not-an-email", stroke: node.Token(tokens.Destructive), fill: surfaceFill, text: textPrimary,
		helper: "Enter a valid email address.", helperColor: node.Token(tokens.Destructive)},
	{name: "Disabled", value: "Unavailable", stroke: border, fill: mutedFill, text: textMuted},
}

func field(c *layout.Composer, s fieldState, width float64) *node.Frame {
	box := c.HStack(layout.Stack{
		Name:         "Field",
		Padding:      node.Pair(12, 0),
		Width:        node.Px(width),
		Height:       node.Px(40),
		Align:        node.AlignCenter,
		Fill:         s.fill,
		Stroke:       s.stroke,
		StrokeWidth:  1,
		CornerRadius: radiusMd,
	}, label(c, s.value, s.text))

	children := []node.Node{
		c.Text("Email", layout.TextStyle{Size: 14, Weight: "500"}),
		box,
	}
	if s.helper != "" {
		children = append(children, c.Text(s.helper, layout.TextStyle{Size: 12, Fill: s.helperColor}))
	}
	return c.VStack(layout.Stack{Name: s.name, Gap: 6}, children...)
}

// Input shows a text field in each interaction state.
func Input(c *layout.Composer) *node.Frame {
	states := make([]node.Node, 0, len(inputStates))
	for _, s := range inputStates {
		states = append(states, labeled(c, s.name, field(c, s, 240)))
	}
	return c.Section("Input", "Single-line text fields with label and helper text.",
		wrapRow(c, "States", 32, states...))
}

func checkbox(c *layout.Composer, name string, checked bool) *node.Frame {
	fill, stroke := surfaceFill, node.Token(tokens.BorderStrong)
	var mark []layout.Placement
	if checked {
		fill, stroke = accent, accent
		mark = append(mark, layout.At(
			c.HStack(layout.Stack{Name: "Check", Width: node.Px(12), Height: node.Px(12)}, c.Icon("check", 12, onAccent)),
			2, 2))
	}
	box := c.Box(layout.Box{Name: "Box", Width: 16, Height: 16, Fill: fill, Stroke: stroke, CornerRadius: node.Num(4)}, mark...)
	return row(c, name, 8, box, label(c, name, textPrimary))
}

// Checkbox shows checked and unchecked boxes with labels.
func Checkbox(c *layout.Composer) *node.Frame {
	return c.Section("Checkbox", "Binary choices in a list of options.",
		column(c, "Options", 12,
			checkbox(c, "Accept terms and conditions", true),
			checkbox(c, "Send me product updates", false),
			checkbox(c, "Remember this device", true),
		),
	)
}

// switchControl draws the thumb resting on the track, which needs
// absolute placement.
func switchControl(c *layout.Composer, on bool) *node.Frame {
	track := mutedFill
	thumbX := 2.0
	if on {
		track = accent
		thumbX = 22
	}
	thumb := c.Rect("Thumb", node.Px(20), node.Px(20), white, radiusFull)
	return c.Box(layout.Box{Name: "Track", Width: 44, Height: 24, Fill: track, CornerRadius: radiusFull},
		layout.At(thumb, thumbX, 2))
}

// Switch shows the on and off states.
func Switch(c *layout.Composer) *node.Frame {
	return c.Section("Switch", "Toggles a single setting on or off.",
		row(c, "States", 48,
			row(c, "Off", 12, switchControl(c, false), label(c, "Airplane mode", textPrimary)),
			row(c, "On", 12, switchControl(c, true), label(c, "Wi-Fi", textPrimary)),
		),
	)
}

func slider(c *layout.Composer, name string, value float64) *node.Frame {
	const width = 280
	filled := width * value
	return labeled(c, fmt.Sprintf("%s · %d%%", name, int(value*100)),
		c.Box(layout.Box{Name: "Slider", Width: width, Height: 20},
			layout.At(c.Rect("Rail", node.Px(width), node.Px(6), mutedFill, radiusFull), 0, 7),
			layout.At(c.Rect("Range", node.Px(filled), node.Px(6), accent, radiusFull), 0, 7),
			layout.At(c.Rect("Handle", node.Px(20), node.Px(20), white, radiusFull), filled-10, 0),
		))
}

// Slider shows a range input at several values.
func Slider(c *layout.Composer) *node.Frame {
	return c.Section("Slider", "Selects a value from a continuous range.",
		row(c, "Values", 48,
			slider(c, "Volume", 0.25),
			slider(c, "Brightness", 0.5),
			slider(c, "Contrast", 0.8),
		),
	)
}

var swatches = []string{
	"#EF4444", "#F97316", "#EAB308", "#22C55E",
	"#06B6D4", "#3B82F6", "#8B5CF6", "#EC4899",
}

// ColorPicker shows a swatch grid with the selected value.
func ColorPicker(c *layout.Composer) *node.Frame {
	chips := make([]node.Node, 0, len(swatches))
	for _, hex := range swatches {
		chips = append(chips, c.Rect(hex, node.Px(28), node.Px(28), node.Color(hex), radiusSm))
	}
	value := c.HStack(layout.Stack{
		Name:         "Value",
		Gap:          8,
		Padding:      node.Pair(8, 6),
		Align:        node.AlignCenter,
		Stroke:       border,
		StrokeWidth:  1,
		CornerRadius: radiusSm,
	},
		c.Rect("Preview", node.Px(20), node.Px(20), node.Color(swatches[5]), radiusSm),
		c.Text(swatches[5], layout.Mono),
	)
	return c.Section("Color Picker", "Picks a color from a preset palette.",
		surface(c, "Picker", 0,
			row(c, "Swatches", 8, chips...),
			value,
		),
	)
}

// Calendar shows a month grid with a selected day.
func Calendar(c *layout.Composer) *node.Frame {
	const (
		cell     = 36
		firstDay = 3
		days     = 30
		selected = 17
		today    = 9
	)
	dayCell := func(text string, fill, ink node.Paint) *node.Frame {
		return c.HStack(layout.Stack{
			Name:         text,
			Width:        node.Px(cell),
			Height:       node.Px(cell),
			Align:        node.AlignCenter,
			Justify:      node.JustifyCenter,
			Fill:         fill,
			CornerRadius: radiusSm,
		}, c.Text(text, layout.TextStyle{Size: 13, Fill: ink}))
	}

	weekdays := []node.Node{}
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		weekdays = append(weekdays, dayCell(d, node.Paint{}, textMuted))
	}
	weeks := []node.Node{row(c, "Weekdays", 0, weekdays...)}

	var week []node.Node
	flush := func() {
		for len(week) < 7 {
			week = append(week, c.Rect("Blank", node.Px(cell), node.Px(cell), node.Paint{}, node.Scalar{}))
		}
		weeks = append(weeks, row(c, fmt.Sprintf("Week %d", len(weeks)), 0, week...))
		week = nil
	}
	for i := 0; i < firstDay; i++ {
		week = append(week, c.Rect("Blank", node.Px(cell), node.Px(cell), node.Paint{}, node.Scalar{}))
	}
	for d := 1; d <= days; d++ {
		fill, ink := node.Paint{}, textPrimary
		switch d {
		case selected:
			fill, ink = accent, onAccent
		case today:
			fill = mutedFill
		}
		week = append(week, dayCell(fmt.Sprint(d), fill, ink))
		if len(week) == 7 {
			flush()
		}
	}
	if len(week) > 0 {
		flush()
	}

	nav := c.HStack(layout.Stack{Name: "Month", Width: node.FillContainer, Align: node.AlignCenter, Justify: node.JustifySpaceBetween},
		c.Icon("chevron-left", 16, textSecondary),
		strong(c, "September 2026"),
		c.Icon("chevron-right", 16, textSecondary),
	)
	return c.Section("Calendar", "Selects a date from a month view.",
		surface(c, "Calendar", 0, nav, column(c, "Grid", 2, weeks...)))
}
