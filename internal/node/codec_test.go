package node

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleFrame() *Frame {
	row := NewFrame("row1", "Row", HugContents, Px(40))
	row.Layout = LayoutHorizontal
	row.Gap = Num(12)
	row.Padding = Pair(8, 4)
	row.Append(
		NewText("txt1", "Label"),
		NewIcon("ico1", "check", 16),
		NewFrame("box1", "Box", Px(24), Px(24)),
	)
	return row
}

func TestFrameLayoutFidelity(t *testing.T) {
	data, err := json.Marshal(sampleFrame())
	require.NoError(t, err)

	out := gjson.ParseBytes(data)
	assert.Equal(t, "frame", out.Get("type").String())
	assert.Equal(t, "horizontal", out.Get("layout").String())
	assert.Equal(t, `12`, out.Get("gap").Raw)
	assert.Equal(t, `[8,4]`, out.Get("padding").Raw)

	out.Get("children").ForEach(func(_, child gjson.Result) bool {
		assert.False(t, child.Get("x").Exists(), "child %s has x", child.Get("id"))
		assert.False(t, child.Get("y").Exists(), "child %s has y", child.Get("id"))
		return true
	})
}

func TestTokenPassThrough(t *testing.T) {
	frame := NewFrame("f1", "Tokens", Px(10), Px(10))
	frame.Fill = Token("$color.text.primary")
	frame.Stroke = Color("#E2E8F0")
	text := NewText("t1", "x")
	text.FontSize = Ref("$font.size.sm")
	frame.Append(text)

	data, err := json.Marshal(frame)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"fill":"$color.text.primary"`)
	assert.Contains(t, string(data), `"stroke":"#E2E8F0"`)
	assert.Contains(t, string(data), `"fontSize":"$font.size.sm"`)

	decoded, err := DecodeNode(data)
	require.NoError(t, err)
	f := decoded.(*Frame)
	assert.True(t, f.Fill.IsToken())
	assert.False(t, f.Stroke.IsToken())
	assert.True(t, f.Children[0].(*Text).FontSize.IsToken())
}

func TestOptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(NewFrame("f1", "Plain", Px(10), Px(20)))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "null")
	out := gjson.ParseBytes(data)
	for _, key := range []string{"x", "y", "layout", "gap", "padding", "cornerRadius", "fill", "stroke", "reusable"} {
		assert.False(t, out.Get(key).Exists(), "unexpected key %s", key)
	}
	assert.Equal(t, `[]`, out.Get("children").Raw)
}

func TestTextDefaults(t *testing.T) {
	text := NewText("t1", "Hello")

	assert.Equal(t, "Inter", text.FontFamily)
	assert.Equal(t, "400", text.FontWeight)
	assert.Equal(t, float64(14), text.FontSize.Or(0))
	assert.Equal(t, "$color.text.primary", text.Fill.String())
	assert.NotSame(t, NewText("t1", "Hello"), text)
}

func TestRoundTrip(t *testing.T) {
	doc := NewDocument()
	page := NewFrame("page1", "Typography", Px(1440), Px(2000)).At(0, 0)
	page.Layout = LayoutVertical
	page.Padding = Uniform(64)
	page.CornerRadius = Ref("radius.md")
	page.Reusable = true
	page.Append(sampleFrame())
	doc.Children = append(doc.Children, page)
	doc.GeneratedSections = []string{"heading"}
	doc.Runs = []Run{{ID: "r1", Pass: "base", Sections: []string{"heading"}}}

	data, err := Encode(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
	assert.Contains(t, string(data), "\n  \"children\": [")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)

	again, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestExtraFieldsPreserved(t *testing.T) {
	input := `{"type":"frame","id":"f1","name":"A","width":10,"height":10,"opacity":0.5,"effect":{"type":"shadow"},"children":[]}`

	n, err := DecodeNode([]byte(input))
	require.NoError(t, err)
	f := n.(*Frame)
	require.Len(t, f.Extra, 2)

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestFrameWithoutChildrenKeyStaysWithout(t *testing.T) {
	input := `{"type":"frame","id":"f1","width":10,"height":10}`

	n, err := DecodeNode([]byte(input))
	require.NoError(t, err)
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestExplicitDefaultsPreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "frame",
			input: `{"type":"frame","id":"f1","name":"","width":10,"height":10,"layout":"","reusable":false,"clip":false,"wrap":false,"fill":"","children":[]}`,
		},
		{
			name:  "text",
			input: `{"type":"text","id":"t1","name":"","content":"x","fontFamily":"","fontSize":14,"fontStyle":"","fill":""}`,
		},
		{
			name:  "icon",
			input: `{"type":"icon_font","id":"i1","iconFontName":"star","iconFontFamily":"","width":16,"height":16,"fill":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := DecodeNode([]byte(tt.input))
			require.NoError(t, err)
			out, err := json.Marshal(n)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestPreservedDefaultGivesWayToNewValue(t *testing.T) {
	n, err := DecodeNode([]byte(`{"type":"frame","id":"f1","name":"","width":10,"height":10,"clip":false}`))
	require.NoError(t, err)
	f := n.(*Frame)
	f.Name = "Renamed"
	f.Clip = true

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), `"name"`))
	assert.Equal(t, 1, strings.Count(string(out), `"clip"`))
	assert.JSONEq(t, `{"type":"frame","id":"f1","name":"Renamed","width":10,"height":10,"clip":true}`, string(out))
}

func TestUnusualPaddingPreserved(t *testing.T) {
	input := `{"type":"frame","id":"f1","width":10,"height":10,"padding":[1,2,3],"children":[]}`

	n, err := DecodeNode([]byte(input))
	require.NoError(t, err)
	top, right, bottom, left := n.(*Frame).Padding.Insets()
	assert.Equal(t, []float64{0, 0, 0, 0}, []float64{top, right, bottom, left})

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestMissingSizeFailsToEncode(t *testing.T) {
	_, err := json.Marshal(&Frame{ID: "nosize", Name: "Loose"})
	assert.ErrorContains(t, err, "nosize")

	_, err = json.Marshal(&Frame{ID: "half", Width: Px(10)})
	assert.ErrorContains(t, err, "missing width or height")

	_, err = json.Marshal(&IconRef{ID: "ico9", IconFontName: "star"})
	assert.ErrorContains(t, err, "ico9")
}

func TestRawNodePreserved(t *testing.T) {
	input := `{"type":"rectangle","id":"r1","fill":{"type":"gradient"},"children":[{"type":"ellipse","id":"e7"}]}`

	n, err := DecodeNode([]byte(input))
	require.NoError(t, err)
	raw, ok := n.(*Raw)
	require.True(t, ok)
	assert.Equal(t, Kind("rectangle"), raw.Kind())
	assert.Equal(t, "r1", raw.NodeID())
	assert.Equal(t, []string{"r1", "e7"}, IDs(raw))

	out, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestNonStringPaintPreserved(t *testing.T) {
	input := `{"type":"text","id":"t1","content":"x","fontFamily":"Inter","fontSize":14,"fontWeight":"400","fill":{"type":"gradient","stops":[]}}`

	n, err := DecodeNode([]byte(input))
	require.NoError(t, err)
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestSizeForms(t *testing.T) {
	tests := []struct {
		name string
		json string
		mode SizeMode
	}{
		{"fixed", `320`, SizeFixed},
		{"fill", `"fill_container"`, SizeFill},
		{"hug", `"hug_contents"`, SizeHug},
		{"keyword", `"fill_container(240)"`, SizeKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Size
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))
			assert.Equal(t, tt.mode, s.Mode())

			out, err := json.Marshal(s)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(out))
		})
	}

	_, err := json.Marshal(Size{})
	assert.Error(t, err)
}

func TestPaddingForms(t *testing.T) {
	tests := []struct {
		name                     string
		json                     string
		top, right, bottom, left float64
		wantErr                  bool
	}{
		{name: "scalar", json: `16`, top: 16, right: 16, bottom: 16, left: 16},
		{name: "pair", json: `[8,4]`, top: 4, right: 8, bottom: 4, left: 8},
		{name: "edges", json: `[1,2,3,4]`, top: 1, right: 2, bottom: 3, left: 4},
		{name: "three values", json: `[1,2,3]`},
		{name: "empty", json: `[]`},
		{name: "string", json: `"wide"`},
		{name: "truncated", json: `[1,`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Padding
			err := json.Unmarshal([]byte(tt.json), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, p.IsZero())
			top, right, bottom, left := p.Insets()
			assert.Equal(t, []float64{tt.top, tt.right, tt.bottom, tt.left}, []float64{top, right, bottom, left})

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(out))
		})
	}
}
