package node

import "github.com/invopop/jsonschema"

// NodeDefinition is the schema definition name shared by all node kinds.
const NodeDefinition = "Node"

func (Paint) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "Literal color, or a token reference starting with $ passed through unresolved.",
	}
}

func (Size) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "number", Minimum: "0"},
			{Type: "string", Examples: []any{fillKeyword, hugKeyword}},
		},
	}
}

func (Scalar) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string", Pattern: `^\$`},
		},
	}
}

func (Padding) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "array", Items: &jsonschema.Schema{Type: "number"}, MinItems: ptr(uint64(2)), MaxItems: ptr(uint64(2))},
			{Type: "array", Items: &jsonschema.Schema{Type: "number"}, MinItems: ptr(uint64(4)), MaxItems: ptr(uint64(4))},
		},
	}
}

func (Children) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Ref: "#/$defs/" + NodeDefinition},
	}
}

func (Frame) JSONSchemaExtend(s *jsonschema.Schema) {
	extendKind(s, KindFrame, "id", "width", "height")
	if layout, ok := s.Properties.Get("layout"); ok {
		layout.Enum = []any{string(LayoutHorizontal), string(LayoutVertical)}
	}
	if align, ok := s.Properties.Get("alignItems"); ok {
		align.Enum = []any{string(AlignStart), string(AlignCenter), string(AlignEnd)}
	}
	if justify, ok := s.Properties.Get("justifyContent"); ok {
		justify.Enum = []any{string(JustifyStart), string(JustifyCenter), string(JustifyEnd), string(JustifySpaceBetween)}
	}
}

func (Text) JSONSchemaExtend(s *jsonschema.Schema) {
	extendKind(s, KindText, "id", "content", "fontFamily", "fontSize", "fontWeight", "fill")
}

func (IconRef) JSONSchemaExtend(s *jsonschema.Schema) {
	extendKind(s, KindIcon, "id", "iconFontName", "iconFontFamily", "width", "height", "fill")
}

func extendKind(s *jsonschema.Schema, kind Kind, required ...string) {
	s.Properties.Set("type", &jsonschema.Schema{Type: "string", Const: string(kind)})
	s.Required = append([]string{"type"}, required...)
	s.AdditionalProperties = nil
}

func ptr[T any](v T) *T { return &v }
