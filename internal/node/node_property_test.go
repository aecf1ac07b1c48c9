//go:build property
// +build property

package node

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildTree turns a list of opcodes into a page tree. Opcodes below 3 add a
// leaf to the current frame, 3 opens a nested frame, 4 closes it.
func buildTree(ops []int, words []string, sizes []float64) *Document {
	doc := NewDocument()
	page := NewFrame("page1", "Page", Px(1440), Px(2000)).At(0, 0)
	doc.Children = append(doc.Children, page)

	stack := []*Frame{page}
	word := func(i int) string {
		if len(words) == 0 {
			return ""
		}
		return words[i%len(words)]
	}
	size := func(i int) float64 {
		if len(sizes) == 0 {
			return 1
		}
		return sizes[i%len(sizes)]
	}

	for i, op := range ops {
		top := stack[len(stack)-1]
		id := fmt.Sprintf("n%d", i)
		switch op {
		case 0:
			text := NewText(id, word(i))
			if i%2 == 0 {
				text.Fill = Color("#112233")
			}
			top.Append(text)
		case 1:
			top.Append(NewIcon(id, word(i), size(i)))
		case 2:
			leaf := NewFrame(id, word(i), Px(size(i)), HugContents)
			leaf.Fill = Token("color." + word(i))
			top.Append(leaf)
		case 3:
			child := NewFrame(id, word(i), FillContainer, HugContents)
			if i%2 == 0 {
				child.Layout = LayoutHorizontal
				child.Gap = Num(size(i))
				child.Padding = Pair(size(i), size(i+1))
			} else {
				child.Layout = LayoutVertical
				child.Padding = Uniform(size(i))
			}
			top.Append(child)
			stack = append(stack, child)
		case 4:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return doc
}

func TestDocumentRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(doc)) == doc", prop.ForAll(
		func(ops []int, words []string, sizes []float64) bool {
			doc := buildTree(ops, words, sizes)
			data, err := Encode(doc)
			if err != nil {
				return false
			}
			decoded, err := Decode(data)
			if err != nil {
				return false
			}
			again, err := Encode(decoded)
			if err != nil {
				return false
			}
			return string(data) == string(again)
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Float64Range(0, 4000)),
	))

	properties.Property("clone is equal and independent", prop.ForAll(
		func(ops []int) bool {
			doc := buildTree(ops, []string{"a"}, []float64{8})
			page := doc.Pages()[0]
			copied := Clone(page).(*Frame)
			before := len(IDs(page))
			copied.Append(NewText("extra", "x"))
			return len(IDs(page)) == before && len(IDs(copied)) == before+1
		},
		gen.SliceOf(gen.IntRange(0, 4)),
	))

	properties.TestingRun(t)
}
