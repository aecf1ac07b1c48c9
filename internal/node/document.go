package node

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape is the top-level JSON layout of a document file.
type Shape int

const (
	// ShapeObject is {"children": [...pages], ...}.
	ShapeObject Shape = iota
	// ShapeArray is [...pages].
	ShapeArray
)

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

// Run records one generation pass applied to a document.
type Run struct {
	ID       string   `json:"id"`
	Pass     string   `json:"pass"`
	Sections []string `json:"sections"`
}

// Document is the persisted page tree. Top-level frames are pages, found by
// exact name. The section ledger (GeneratedSections, Runs) only exists in
// the object shape.
type Document struct {
	Shape             Shape
	Children          Children
	GeneratedSections []string
	Runs              []Run

	// Extra holds unmodeled top-level keys of an object-shaped document.
	Extra map[string]json.RawMessage
}

var documentFields = map[string]bool{
	"children":          true,
	"generatedSections": true,
	"generationRuns":    true,
}

// NewDocument returns an empty object-shaped document.
func NewDocument() *Document {
	return &Document{Shape: ShapeObject, Children: Children{}}
}

// Pages returns the top-level frames in order.
func (d *Document) Pages() []*Frame {
	pages := make([]*Frame, 0, len(d.Children))
	for _, child := range d.Children {
		if f, ok := child.(*Frame); ok {
			pages = append(pages, f)
		}
	}
	return pages
}

// PagesNamed returns every top-level frame whose name equals name exactly.
func (d *Document) PagesNamed(name string) []*Frame {
	var matches []*Frame
	for _, page := range d.Pages() {
		if page.Name == name {
			matches = append(matches, page)
		}
	}
	return matches
}

// HasLedger reports whether the document carries section bookkeeping.
func (d *Document) HasLedger() bool {
	return len(d.GeneratedSections) > 0 || len(d.Runs) > 0
}

// MarshalJSON writes the document in its shape. An array-shaped document
// with a ledger is written as an object, since arrays cannot carry one.
func (d *Document) MarshalJSON() ([]byte, error) {
	children := d.Children
	if children == nil {
		children = Children{}
	}
	if d.Shape == ShapeArray && !d.HasLedger() {
		return json.Marshal([]Node(children))
	}
	return encodeWithExtra(struct {
		Children          Children `json:"children"`
		GeneratedSections []string `json:"generatedSections,omitempty"`
		Runs              []Run    `json:"generationRuns,omitempty"`
	}{children, d.GeneratedSections, d.Runs}, d.Extra, documentFields)
}

// UnmarshalJSON accepts a top-level array of pages or an object with a
// "children" array.
func (d *Document) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("document is empty")
	}

	switch data[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		children, err := decodeChildren(raws)
		if err != nil {
			return err
		}
		if children == nil {
			children = Children{}
		}
		*d = Document{Shape: ShapeArray, Children: children}
		return nil
	case '{':
		var aux struct {
			Children          *[]json.RawMessage `json:"children"`
			GeneratedSections []string           `json:"generatedSections"`
			Runs              []Run              `json:"generationRuns"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return err
		}
		if aux.Children == nil {
			return fmt.Errorf("document object has no children array")
		}
		children, err := decodeChildren(*aux.Children)
		if err != nil {
			return err
		}
		if children == nil {
			children = Children{}
		}
		extra, err := collectExtra(data, documentFields, nil)
		if err != nil {
			return err
		}
		*d = Document{
			Shape:             ShapeObject,
			Children:          children,
			GeneratedSections: aux.GeneratedSections,
			Runs:              aux.Runs,
			Extra:             extra,
		}
		return nil
	}
	return fmt.Errorf("document must be a JSON array or object")
}

// Decode parses a document from JSON.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode serializes a document with two-space indentation and a trailing
// newline, the on-disk format.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
