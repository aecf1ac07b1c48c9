package sections

import (
	"github.com/conneroisu/pencraft/internal/registry"
)

// Page names targeted by the built-in sections.
const (
	PageTypography = "Typography"
	PageActions    = "Actions"
	PageForms      = "Forms"
	PageData       = "Data Display"
	PageFeedback   = "Feedback"
	PageOverlays   = "Overlays"
	PageNavigation = "Navigation & Layout"
)

var builtins = []registry.SectionInfo{
	{Key: "heading", Page: PageTypography, Prefix: "hd", Order: 100, Build: Heading},
	{Key: "text", Page: PageTypography, Prefix: "txt", Order: 110, Build: Text},

	{Key: "button", Page: PageActions, Prefix: "btn", Order: 200, Build: Button},
	{Key: "badge", Page: PageActions, Prefix: "badge", Order: 210, Build: Badge},
	{Key: "toggle-group", Page: PageActions, Prefix: "tg", Order: 220, Build: ToggleGroup},

	{Key: "input", Page: PageForms, Prefix: "inp", Order: 300, Build: Input},
	{Key: "checkbox", Page: PageForms, Prefix: "chk", Order: 310, Build: Checkbox},
	{Key: "switch", Page: PageForms, Prefix: "sw", Order: 320, Build: Switch},
	{Key: "slider", Page: PageForms, Prefix: "sld", Order: 330, Build: Slider},
	{Key: "color-picker", Page: PageForms, Prefix: "cp", Order: 340, Build: ColorPicker},
	{Key: "calendar", Page: PageForms, Prefix: "cal", Order: 350, Build: Calendar},

	{Key: "blockquote", Page: PageData, Prefix: "bq", Order: 400, Build: Blockquote},
	{Key: "code", Page: PageData, Prefix: "code", Order: 410, Build: Code},
	{Key: "icon", Page: PageData, Prefix: "ico", Order: 420, Build: Icon},
	{Key: "image", Page: PageData, Prefix: "img", Order: 430, Build: Image},
	{Key: "avatar", Page: PageData, Prefix: "av", Order: 440, Build: Avatar},
	{Key: "card", Page: PageData, Prefix: "card", Order: 450, Build: Card},
	{Key: "data-table", Page: PageData, Prefix: "dt", Order: 460, Build: DataTable},

	{Key: "alert", Page: PageFeedback, Prefix: "alert", Order: 500, Build: Alert},
	{Key: "toast", Page: PageFeedback, Prefix: "toast", Order: 510, Build: Toast},
	{Key: "progress", Page: PageFeedback, Prefix: "prog", Order: 520, Build: Progress},

	{Key: "dialog", Page: PageOverlays, Prefix: "dlg", Order: 600, Build: Dialog},
	{Key: "command", Page: PageOverlays, Prefix: "cmd", Order: 610, Build: Command},
	{Key: "tooltip", Page: PageOverlays, Prefix: "tip", Order: 620, Build: Tooltip},

	{Key: "tabs", Page: PageNavigation, Prefix: "tabs", Order: 700, Build: Tabs},
	{Key: "breadcrumb", Page: PageNavigation, Prefix: "bc", Order: 710, Build: Breadcrumb},
	{Key: "announcement", Page: PageNavigation, Prefix: "ann", Order: 720, Build: Announcement},
}

// Register adds every built-in section to reg.
func Register(reg *registry.SectionRegistry) error {
	for i := range builtins {
		info := builtins[i]
		if err := reg.Register(&info); err != nil {
			return err
		}
	}
	return nil
}

// Builtin returns a registry holding the built-in sections.
func Builtin() *registry.SectionRegistry {
	reg := registry.NewSectionRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
