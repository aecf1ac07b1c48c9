package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDocumentSchema(t *testing.T) {
	data, err := Marshal()
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(data))

	s := gjson.ParseBytes(data)
	assert.Equal(t, ID, s.Get(`\$id`).String())
	assert.Len(t, s.Get("oneOf").Array(), 2)

	defs := s.Get(`\$defs`)
	for _, name := range []string{"Node", "Frame", "Text", "IconRef", "Run"} {
		assert.True(t, defs.Get(name).Exists(), name)
	}
	assert.Len(t, defs.Get("Node.oneOf").Array(), 3)
}

func TestKindsAreDiscriminated(t *testing.T) {
	data, err := Marshal()
	require.NoError(t, err)
	defs := gjson.GetBytes(data, `\$defs`)

	testCases := []struct {
		def  string
		kind string
	}{
		{"Frame", "frame"},
		{"Text", "text"},
		{"IconRef", "icon_font"},
	}
	for _, tc := range testCases {
		t.Run(tc.def, func(t *testing.T) {
			def := defs.Get(tc.def)
			assert.Equal(t, tc.kind, def.Get("properties.type.const").String())
			assert.Equal(t, "type", def.Get("required.0").String())
			assert.Contains(t, def.Get("required").String(), `"id"`)
		})
	}
}

func TestChildrenReferenceNode(t *testing.T) {
	data, err := Marshal()
	require.NoError(t, err)
	children := gjson.GetBytes(data, `\$defs.Frame.properties.children`)
	require.True(t, children.Exists())
	if ref := children.Get(`\$ref`); ref.Exists() {
		children = gjson.GetBytes(data, `\$defs.`+ref.String()[len("#/$defs/"):])
	}
	assert.Equal(t, "#/$defs/Node", children.Get(`items.\$ref`).String())
}
