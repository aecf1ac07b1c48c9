package store

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// PageSummary describes a page as read from raw document bytes.
type PageSummary struct {
	Name     string  `json:"name" yaml:"name"`
	ID       string  `json:"id" yaml:"id"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    string  `json:"width" yaml:"width"`
	Height   string  `json:"height" yaml:"height"`
	Children int     `json:"children" yaml:"children"`
	Nodes    int     `json:"nodes" yaml:"nodes"`
}

// Summary describes a document without decoding its node tree.
type Summary struct {
	Shape     string        `json:"shape" yaml:"shape"`
	Pages     []PageSummary `json:"pages" yaml:"pages"`
	Sections  []string      `json:"generatedSections,omitempty" yaml:"generatedSections,omitempty"`
	Runs      int           `json:"runs" yaml:"runs"`
	LastPass  string        `json:"lastPass,omitempty" yaml:"lastPass,omitempty"`
	TotalNode int           `json:"nodes" yaml:"nodes"`
}

// Inspect reads page names, positions and child counts straight from the
// document bytes. Top-level entries that are not frames are skipped.
func Inspect(data []byte) (*Summary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("document is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	summary := &Summary{}
	var pages gjson.Result
	switch {
	case root.IsArray():
		summary.Shape = "array"
		pages = root
	case root.IsObject() && root.Get("children").IsArray():
		summary.Shape = "object"
		pages = root.Get("children")
		root.Get("generatedSections").ForEach(func(_, v gjson.Result) bool {
			summary.Sections = append(summary.Sections, v.String())
			return true
		})
		runs := root.Get("generationRuns")
		summary.Runs = int(runs.Get("#").Int())
		if summary.Runs > 0 {
			summary.LastPass = runs.Get(fmt.Sprintf("%d.pass", summary.Runs-1)).String()
		}
	default:
		return nil, fmt.Errorf("document must be a JSON array or an object with a children array")
	}

	pages.ForEach(func(_, page gjson.Result) bool {
		if page.Get("type").String() != "frame" {
			return true
		}
		nodes := countNodes(page)
		summary.TotalNode += nodes
		summary.Pages = append(summary.Pages, PageSummary{
			Name:     page.Get("name").String(),
			ID:       page.Get("id").String(),
			X:        page.Get("x").Float(),
			Y:        page.Get("y").Float(),
			Width:    page.Get("width").String(),
			Height:   page.Get("height").String(),
			Children: int(page.Get("children.#").Int()),
			Nodes:    nodes,
		})
		return true
	})
	return summary, nil
}

func countNodes(n gjson.Result) int {
	total := 1
	n.Get("children").ForEach(func(_, child gjson.Result) bool {
		total += countNodes(child)
		return true
	})
	return total
}
