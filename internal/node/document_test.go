package node

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocumentShapes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shape     Shape
		pages     int
		wantErr   bool
		wantExtra bool
	}{
		{
			name:  "array",
			input: `[{"type":"frame","id":"p1","name":"A","width":10,"height":10,"children":[]}]`,
			shape: ShapeArray,
			pages: 1,
		},
		{
			name:      "object",
			input:     `{"version":"2.1","children":[{"type":"frame","id":"p1","name":"A","width":10,"height":10,"children":[]}]}`,
			shape:     ShapeObject,
			pages:     1,
			wantExtra: true,
		},
		{name: "object without children", input: `{"pages":[]}`, wantErr: true},
		{name: "scalar", input: `42`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "truncated", input: `[{"type":"frame"`, wantErr: true},
		{name: "empty", input: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shape, doc.Shape)
			assert.Len(t, doc.Pages(), tt.pages)
			assert.Equal(t, tt.wantExtra, doc.Extra != nil)
		})
	}
}

func TestArrayDocumentKeepsShape(t *testing.T) {
	input := `[{"type":"frame","id":"p1","name":"A","width":10,"height":10,"children":[]}]`

	doc, err := Decode([]byte(input))
	require.NoError(t, err)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestArrayDocumentWithLedgerBecomesObject(t *testing.T) {
	doc, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	doc.GeneratedSections = []string{"button"}

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"children":[],"generatedSections":["button"]}`, string(out))
}

func TestPagesNamed(t *testing.T) {
	doc := NewDocument()
	doc.Children = Children{
		NewFrame("p1", "Forms", Px(1), Px(1)),
		NewText("t1", "stray"),
		NewFrame("p2", "forms", Px(1), Px(1)),
		NewFrame("p3", "Forms", Px(1), Px(1)),
	}

	assert.Len(t, doc.Pages(), 3)
	matches := doc.PagesNamed("Forms")
	require.Len(t, matches, 2)
	assert.Equal(t, "p1", matches[0].ID)
	assert.Equal(t, "p3", matches[1].ID)
	assert.Empty(t, doc.PagesNamed("Overlays"))
}

func TestCloneSharesNothing(t *testing.T) {
	original := sampleFrame().At(10, 20)
	original.Extra = map[string]json.RawMessage{"opacity": json.RawMessage(`1`)}

	copied := Clone(original).(*Frame)
	require.Equal(t, original, copied)

	*copied.X = 99
	copied.Extra["opacity"] = json.RawMessage(`0`)
	copied.Children[0].(*Text).Content = "changed"
	copied.Append(NewText("t9", "more"))

	assert.Equal(t, float64(10), *original.X)
	assert.Equal(t, json.RawMessage(`1`), original.Extra["opacity"])
	assert.Equal(t, "Label", original.Children[0].(*Text).Content)
	assert.Len(t, original.Children, 3)
}

func TestWalkSkipChildren(t *testing.T) {
	outer := NewFrame("outer", "Outer", Px(1), Px(1))
	inner := NewFrame("inner", "Inner", Px(1), Px(1))
	inner.Append(NewText("deep", "x"))
	outer.Append(inner, NewText("sibling", "y"))

	var visited []string
	err := Walk(outer, func(n Node) error {
		visited = append(visited, n.NodeID())
		if n.NodeID() == "inner" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "sibling"}, visited)
	assert.Equal(t, []string{"outer", "inner", "deep", "sibling"}, IDs(outer))
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, Duplicates([]string{"a1", "a2", "b1"}))
	assert.Equal(t, []string{"a1", "b1"}, Duplicates([]string{"a1", "b1", "a1", "b1", "a1"}))
}

func TestVerify(t *testing.T) {
	ok := sampleFrame()
	assert.NoError(t, Verify(ok))

	missingID := sampleFrame()
	missingID.Children[0].(*Text).ID = ""
	assert.ErrorContains(t, Verify(missingID), "no id")

	missingSize := sampleFrame()
	missingSize.Append(&Frame{ID: "bad", Name: "Bad"})
	assert.ErrorContains(t, Verify(missingSize), "bad")

	missingFont := sampleFrame()
	missingFont.Append(&Text{ID: "t5", Content: "x"})
	assert.ErrorContains(t, Verify(missingFont), "font size")
}
