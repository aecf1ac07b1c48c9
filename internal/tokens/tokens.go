// Package tokens names the design token references threaded through the
// generated document. References are opaque: nothing in pencraft resolves
// them, the destination design tool does.
package tokens

import "strings"

// Prefix marks a string value as a token reference.
const Prefix = "$"

// Color references.
const (
	TextPrimary         = "$color.text.primary"
	TextSecondary       = "$color.text.secondary"
	TextMuted           = "$color.text.muted"
	TextInverse         = "$color.text.inverse"
	TextLink            = "$color.text.link"
	BackgroundPrimary   = "$color.background.primary"
	BackgroundSecondary = "$color.background.secondary"
	BackgroundMuted     = "$color.background.muted"
	BackgroundOverlay   = "$color.background.overlay"
	BackgroundInverse   = "$color.background.inverse"
	BorderDefault       = "$color.border.default"
	BorderStrong        = "$color.border.strong"
	BorderFocus         = "$color.border.focus"
	AccentPrimary       = "$color.accent.primary"
	AccentForeground    = "$color.accent.foreground"
	AccentSecondary     = "$color.accent.secondary"
	Destructive         = "$color.status.destructive"
	Success             = "$color.status.success"
	Warning             = "$color.status.warning"
	Info                = "$color.status.info"
)

// Typography references.
const (
	FontSans = "$font.family.sans"
	FontMono = "$font.family.mono"
)

// Radius references.
const (
	RadiusSmall  = "$radius.sm"
	RadiusMedium = "$radius.md"
	RadiusLarge  = "$radius.lg"
	RadiusFull   = "$radius.full"
)

// IsRef reports whether v is a token reference.
func IsRef(v string) bool {
	return strings.HasPrefix(v, Prefix)
}

// Ref turns a bare token path such as "color.text.primary" into a reference.
// Values that already carry the prefix are returned unchanged.
func Ref(path string) string {
	if IsRef(path) {
		return path
	}
	return Prefix + path
}
