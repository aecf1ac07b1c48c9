package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/conneroisu/pencraft/internal/tokens"
)

// Paint is a fill or stroke value: either a literal color or a token
// reference. Both serialize as the original string. Non-string paints found
// in an existing document (gradients, image fills) are kept verbatim.
type Paint struct {
	value string
	ref   bool
	raw   json.RawMessage
}

// Color returns a literal color paint such as "#0F172A".
func Color(value string) Paint {
	return Paint{value: value}
}

// Token returns a token reference paint. A missing "$" prefix is added.
func Token(name string) Paint {
	return Paint{value: tokens.Ref(name), ref: true}
}

// IsToken reports whether the paint is a token reference.
func (p Paint) IsToken() bool { return p.ref }

// IsZero reports whether the paint is unset.
func (p Paint) IsZero() bool { return p.value == "" && len(p.raw) == 0 }

// String returns the literal color or the reference name.
func (p Paint) String() string {
	if len(p.raw) > 0 {
		return string(p.raw)
	}
	return p.value
}

// MarshalJSON writes the paint exactly as it was supplied.
func (p Paint) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON reads a string paint, classifying "$" strings as references.
func (p *Paint) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		p.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
		return nil
	}
	*p = Paint{value: s, ref: tokens.IsRef(s)}
	return nil
}

// SizeMode says how a Size is resolved by the destination tool.
type SizeMode int

const (
	sizeUnset SizeMode = iota
	SizeFixed
	SizeFill
	SizeHug
	SizeKeyword
)

const (
	fillKeyword = "fill_container"
	hugKeyword  = "hug_contents"
)

// Size is a width or height: fixed pixels or a sizing keyword.
type Size struct {
	mode    SizeMode
	px      float64
	keyword string
}

var (
	// FillContainer stretches along the parent's layout axis.
	FillContainer = Size{mode: SizeFill, keyword: fillKeyword}
	// HugContents shrinks to the node's children.
	HugContents = Size{mode: SizeHug, keyword: hugKeyword}
)

// Px returns a fixed pixel size.
func Px(v float64) Size {
	return Size{mode: SizeFixed, px: v}
}

// Mode returns how the size resolves.
func (s Size) Mode() SizeMode { return s.mode }

// Pixels returns the fixed size and whether the size is fixed.
func (s Size) Pixels() (float64, bool) {
	return s.px, s.mode == SizeFixed
}

// IsZero reports whether the size was never set.
func (s Size) IsZero() bool { return s.mode == sizeUnset }

func (s Size) String() string {
	switch s.mode {
	case SizeFixed:
		return strconv.FormatFloat(s.px, 'f', -1, 64)
	case sizeUnset:
		return "unset"
	default:
		return s.keyword
	}
}

// MarshalJSON writes a number for fixed sizes and a string otherwise.
// An unset size is an error so builder mistakes surface at validation.
func (s Size) MarshalJSON() ([]byte, error) {
	switch s.mode {
	case sizeUnset:
		return nil, fmt.Errorf("size is not set")
	case SizeFixed:
		return json.Marshal(s.px)
	default:
		return json.Marshal(s.keyword)
	}
}

// UnmarshalJSON accepts a number or a sizing keyword.
func (s *Size) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Px(n)
		return nil
	}
	var kw string
	if err := json.Unmarshal(data, &kw); err != nil {
		return fmt.Errorf("size must be a number or keyword: %s", data)
	}
	switch kw {
	case fillKeyword:
		*s = FillContainer
	case hugKeyword:
		*s = HugContents
	default:
		*s = Size{mode: SizeKeyword, keyword: kw}
	}
	return nil
}

// Scalar is a number that may instead be a token reference, used for
// metrics such as font size, gap and corner radius.
type Scalar struct {
	num float64
	ref string
	set bool
}

// Num returns a literal scalar.
func Num(v float64) Scalar {
	return Scalar{num: v, set: true}
}

// Ref returns a token reference scalar.
func Ref(name string) Scalar {
	return Scalar{ref: tokens.Ref(name), set: true}
}

// Value returns the literal number and whether the scalar is literal.
func (s Scalar) Value() (float64, bool) {
	return s.num, s.set && s.ref == ""
}

// Or returns the literal number, or fallback for unset and reference values.
func (s Scalar) Or(fallback float64) float64 {
	if v, ok := s.Value(); ok {
		return v
	}
	return fallback
}

// IsToken reports whether the scalar is a token reference.
func (s Scalar) IsToken() bool { return s.ref != "" }

// IsZero reports whether the scalar was never set.
func (s Scalar) IsZero() bool { return !s.set }

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.ref != "" {
		return json.Marshal(s.ref)
	}
	return json.Marshal(s.num)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Num(n)
		return nil
	}
	var ref string
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("scalar must be a number or token reference: %s", data)
	}
	*s = Scalar{ref: ref, set: true}
	return nil
}

// Padding is a frame's inner spacing: one value for all edges, a
// [horizontal, vertical] pair, or [top, right, bottom, left]. Other forms
// read from a document are kept verbatim and contribute no insets.
type Padding struct {
	values []float64
	raw    json.RawMessage
}

// Uniform pads every edge by v.
func Uniform(v float64) Padding {
	return Padding{values: []float64{v}}
}

// Pair pads left/right by h and top/bottom by v.
func Pair(h, v float64) Padding {
	return Padding{values: []float64{h, v}}
}

// Edges pads each edge separately.
func Edges(top, right, bottom, left float64) Padding {
	return Padding{values: []float64{top, right, bottom, left}}
}

// IsZero reports whether padding was never set.
func (p Padding) IsZero() bool { return len(p.values) == 0 && len(p.raw) == 0 }

// Insets returns the padding per edge.
func (p Padding) Insets() (top, right, bottom, left float64) {
	switch len(p.values) {
	case 1:
		v := p.values[0]
		return v, v, v, v
	case 2:
		h, v := p.values[0], p.values[1]
		return v, h, v, h
	case 4:
		return p.values[0], p.values[1], p.values[2], p.values[3]
	}
	return 0, 0, 0, 0
}

func (p Padding) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	if len(p.values) == 1 {
		return json.Marshal(p.values[0])
	}
	return json.Marshal(p.values)
}

func (p *Padding) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Uniform(n)
		return nil
	}
	var values []float64
	if err := json.Unmarshal(data, &values); err == nil {
		switch len(values) {
		case 1, 2, 4:
			*p = Padding{values: values}
			return nil
		}
	}
	if !json.Valid(data) {
		return fmt.Errorf("padding is not valid JSON: %s", data)
	}
	*p = Padding{raw: append(json.RawMessage(nil), data...)}
	return nil
}

func (p Padding) clone() Padding {
	if p.IsZero() {
		return Padding{}
	}
	return Padding{
		values: append([]float64(nil), p.values...),
		raw:    append(json.RawMessage(nil), p.raw...),
	}
}

// Layout is the auto-layout direction of a frame.
type Layout string

const (
	LayoutNone       Layout = ""
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// Align positions children on the cross axis.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Justify distributes children on the main axis.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyCenter       Justify = "center"
	JustifyEnd          Justify = "end"
	JustifySpaceBetween Justify = "space_between"
)

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
