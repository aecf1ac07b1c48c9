// Package node defines the page tree written into the design document: the
// Frame, Text and IconRef node kinds, the Document holding top-level pages,
// and their JSON encoding.
//
// Nodes are plain data. Constructors apply documented defaults and always
// return a freshly allocated node, so no two positions in a tree share
// storage and serialization depends on tree shape alone.
//
// Nodes read from an existing document keep any fields pencraft does not
// model in Extra, and nodes of unknown kinds are kept as Raw, so a load and
// write cycle never drops content written by the design tool.
package node

import (
	"encoding/json"

	"github.com/conneroisu/pencraft/internal/tokens"
)

// Kind discriminates node types in JSON via the "type" field.
type Kind string

const (
	KindFrame Kind = "frame"
	KindText  Kind = "text"
	KindIcon  Kind = "icon_font"
)

// Text defaults.
const (
	DefaultFontFamily = "Inter"
	DefaultFontSize   = 14
	DefaultFontWeight = "400"
	DefaultIconFamily = "lucide"
)

// Node is any element of the page tree.
type Node interface {
	// Kind returns the node's type discriminator.
	Kind() Kind
	// NodeID returns the node's document-unique identifier.
	NodeID() string
}

// Children is an ordered list of child nodes. Order is stacking and
// reading order and is preserved through every load and write.
type Children []Node

// Frame is a rectangular container using auto-layout or absolute placement.
type Frame struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	X               *float64 `json:"x,omitempty"`
	Y               *float64 `json:"y,omitempty"`
	Width           Size     `json:"width"`
	Height          Size     `json:"height"`
	Layout          Layout   `json:"layout,omitempty"`
	Gap             Scalar   `json:"gap,omitzero"`
	Padding         Padding  `json:"padding,omitzero"`
	AlignItems      Align    `json:"alignItems,omitempty"`
	JustifyContent  Justify  `json:"justifyContent,omitempty"`
	Wrap            bool     `json:"wrap,omitempty"`
	CornerRadius    Scalar   `json:"cornerRadius,omitzero"`
	Fill            Paint    `json:"fill,omitzero"`
	Stroke          Paint    `json:"stroke,omitzero"`
	StrokeThickness Scalar   `json:"strokeThickness,omitzero"`
	Clip            bool     `json:"clip,omitempty"`
	Reusable        bool     `json:"reusable,omitempty"`
	Children        Children `json:"children,omitzero"`

	// Extra holds fields present in the source document that Frame does
	// not model, and modeled fields whose source value encoding would
	// omit, such as "clip": false. They are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// Text is a run of text. Its extent comes from content and font metrics.
type Text struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Content    string `json:"content"`
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   Scalar `json:"fontSize,omitzero"`
	FontWeight string `json:"fontWeight,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
	Fill       Paint  `json:"fill,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// IconRef references a glyph in an icon font.
type IconRef struct {
	ID             string `json:"id"`
	IconFontName   string `json:"iconFontName"`
	IconFontFamily string `json:"iconFontFamily,omitempty"`
	Width          Size   `json:"width"`
	Height         Size   `json:"height"`
	Fill           Paint  `json:"fill,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Raw is a node of a kind pencraft does not model. Its JSON is kept as-is.
type Raw struct {
	Type string
	ID   string
	Data json.RawMessage
}

func (*Frame) Kind() Kind   { return KindFrame }
func (*Text) Kind() Kind    { return KindText }
func (*IconRef) Kind() Kind { return KindIcon }
func (r *Raw) Kind() Kind   { return Kind(r.Type) }

func (f *Frame) NodeID() string   { return f.ID }
func (t *Text) NodeID() string    { return t.ID }
func (i *IconRef) NodeID() string { return i.ID }
func (r *Raw) NodeID() string     { return r.ID }

// NewFrame returns a frame with an empty child list.
func NewFrame(id, name string, width, height Size) *Frame {
	return &Frame{
		ID:       id,
		Name:     name,
		Width:    width,
		Height:   height,
		Children: Children{},
	}
}

// NewText returns a text node with the default typography: Inter, 14,
// weight 400, filled with the primary text token.
func NewText(id, content string) *Text {
	return &Text{
		ID:         id,
		Content:    content,
		FontFamily: DefaultFontFamily,
		FontSize:   Num(DefaultFontSize),
		FontWeight: DefaultFontWeight,
		Fill:       Token(tokens.TextPrimary),
	}
}

// NewIcon returns a square icon glyph from the default icon font.
func NewIcon(id, name string, size float64) *IconRef {
	return &IconRef{
		ID:             id,
		IconFontName:   name,
		IconFontFamily: DefaultIconFamily,
		Width:          Px(size),
		Height:         Px(size),
		Fill:           Token(tokens.TextPrimary),
	}
}

// At sets an absolute position on the frame and returns it.
func (f *Frame) At(x, y float64) *Frame {
	f.X, f.Y = &x, &y
	return f
}

// Position returns the frame's absolute position, if it has one.
func (f *Frame) Position() (x, y float64, ok bool) {
	if f.X == nil || f.Y == nil {
		return 0, 0, false
	}
	return *f.X, *f.Y, true
}

// Append adds nodes after the existing children.
func (f *Frame) Append(nodes ...Node) {
	if f.Children == nil {
		f.Children = Children{}
	}
	f.Children = append(f.Children, nodes...)
}
