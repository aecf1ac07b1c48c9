//go:build property
// +build property

package store

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/pencraft/internal/idalloc"
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
)

var pageNames = []string{"Typography", "Actions", "Forms"}

func seedDocument() *node.Document {
	doc := node.NewDocument()
	tiler := layout.NewTiler(layout.DefaultBandHeight)
	c := layout.NewComposer(idalloc.New(1), "page")
	for _, name := range pageNames {
		doc.Children = append(doc.Children, c.Page(name, layout.PageSpec{}, tiler))
	}
	return doc
}

// childIDs lists each page's direct child ids in order. Every page has an
// entry, even an empty one.
func childIDs(doc *node.Document) map[string][]string {
	out := make(map[string][]string)
	for _, p := range doc.Pages() {
		ids := make([]string, 0, len(p.Children))
		for _, c := range p.Children {
			ids = append(ids, c.NodeID())
		}
		out[p.Name] = ids
	}
	return out
}

// smallRuns caps generated slice lengths at 8.
func smallRuns() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MaxSize = 8
	return parameters
}

func isPrefix(prefix, full []string) bool {
	if len(prefix) > len(full) {
		return false
	}
	for i := range prefix {
		if prefix[i] != full[i] {
			return false
		}
	}
	return true
}

func TestAppendOnlyGrowth(t *testing.T) {
	properties := gopter.NewProperties(smallRuns())

	properties.Property("runs never reorder or remove earlier children", prop.ForAll(
		func(runs [][]int) bool {
			doc := seedDocument()
			for _, run := range runs {
				data, err := node.Encode(doc)
				if err != nil {
					return false
				}
				doc, err = node.Decode(data)
				if err != nil {
					return false
				}
				ids := idalloc.New(1)
				ids.Seed(doc)
				c := layout.NewComposer(ids, "s")

				before := childIDs(doc)
				var placements []Placement
				for _, target := range run {
					placements = append(placements, Placement{
						Page:  pageNames[target],
						Nodes: []node.Node{c.VStack(layout.Stack{Name: "S"}, c.Text("x", layout.Body))},
					})
				}
				if _, err := AppendAll(doc, placements); err != nil {
					return false
				}
				if _, err := Validate(doc); err != nil {
					return false
				}
				after := childIDs(doc)
				for name, ids := range before {
					if !isPrefix(ids, after[name]) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOfN(4, gen.SliceOf(gen.IntRange(0, len(pageNames)-1))),
	))

	properties.Property("a missing page leaves every page untouched", prop.ForAll(
		func(targets []int) bool {
			doc := seedDocument()
			c := layout.NewComposer(idalloc.New(1), "s")
			for _, p := range doc.Pages() {
				p.Append(c.Text("seed", layout.Body))
			}
			before := childIDs(doc)

			var placements []Placement
			for _, target := range targets {
				placements = append(placements, Placement{
					Page:  pageNames[target],
					Nodes: []node.Node{c.Text("x", layout.Body)},
				})
			}
			placements = append(placements, Placement{Page: "Missing", Nodes: []node.Node{c.Text("y", layout.Body)}})

			if _, err := AppendAll(doc, placements); err == nil {
				return false
			}
			return reflect.DeepEqual(before, childIDs(doc))
		},
		gen.SliceOf(gen.IntRange(0, len(pageNames)-1)),
	))

	properties.TestingRun(t)
}
