package node

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// SkipChildren can be returned by a WalkFunc to skip a frame's subtree.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node in depth-first, pre-order sequence.
type WalkFunc func(n Node) error

// Walk visits n and its descendants. Raw nodes are visited but their
// contents are opaque to Walk; use IDs to reach ids inside them.
func Walk(n Node, fn WalkFunc) error {
	if err := fn(n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	f, ok := n.(*Frame)
	if !ok {
		return nil
	}
	for _, child := range f.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkDocument visits every node of every top-level child.
func WalkDocument(d *Document, fn WalkFunc) error {
	for _, child := range d.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// IDs returns every id in the subtree in pre-order, including ids nested
// inside Raw nodes.
func IDs(n Node) []string {
	var ids []string
	_ = Walk(n, func(n Node) error {
		if raw, ok := n.(*Raw); ok {
			collectRawIDs(gjson.ParseBytes(raw.Data), &ids)
			return nil
		}
		if id := n.NodeID(); id != "" {
			ids = append(ids, id)
		}
		return nil
	})
	return ids
}

// DocumentIDs returns every id in the document in pre-order.
func DocumentIDs(d *Document) []string {
	var ids []string
	for _, child := range d.Children {
		ids = append(ids, IDs(child)...)
	}
	return ids
}

func collectRawIDs(obj gjson.Result, ids *[]string) {
	if id := obj.Get("id"); id.Type == gjson.String && id.Str != "" {
		*ids = append(*ids, id.Str)
	}
	obj.Get("children").ForEach(func(_, child gjson.Result) bool {
		collectRawIDs(child, ids)
		return true
	})
}

// Duplicates returns ids that occur more than once, in first-seen order.
func Duplicates(ids []string) []string {
	seen := make(map[string]int, len(ids))
	var dups []string
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// Clone returns a deep copy of n sharing no storage with it.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Frame:
		c := *v
		c.X = cloneFloat(v.X)
		c.Y = cloneFloat(v.Y)
		c.Padding = v.Padding.clone()
		c.Fill = v.Fill.clone()
		c.Stroke = v.Stroke.clone()
		c.Extra = cloneExtra(v.Extra)
		if v.Children != nil {
			c.Children = make(Children, len(v.Children))
			for i, child := range v.Children {
				c.Children[i] = Clone(child)
			}
		}
		return &c
	case *Text:
		c := *v
		c.Fill = v.Fill.clone()
		c.Extra = cloneExtra(v.Extra)
		return &c
	case *IconRef:
		c := *v
		c.Fill = v.Fill.clone()
		c.Extra = cloneExtra(v.Extra)
		return &c
	case *Raw:
		c := *v
		c.Data = append(json.RawMessage(nil), v.Data...)
		return &c
	}
	panic(fmt.Sprintf("node: cannot clone %T", n))
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	c := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		c[k] = append(json.RawMessage(nil), v...)
	}
	return c
}

func (p Paint) clone() Paint {
	if p.raw != nil {
		p.raw = append(json.RawMessage(nil), p.raw...)
	}
	return p
}

// Verify checks the structural requirements of freshly built nodes: every
// node has an id, frames and icons have both dimensions, and text has a
// font size. It reports the first violation found.
func Verify(n Node) error {
	return Walk(n, func(n Node) error {
		if n.NodeID() == "" {
			return fmt.Errorf("%s node has no id", n.Kind())
		}
		switch v := n.(type) {
		case *Frame:
			if v.Width.IsZero() || v.Height.IsZero() {
				return fmt.Errorf("frame %s (%q) is missing width or height", v.ID, v.Name)
			}
		case *IconRef:
			if v.Width.IsZero() || v.Height.IsZero() {
				return fmt.Errorf("icon %s is missing width or height", v.ID)
			}
		case *Text:
			if v.FontSize.IsZero() {
				return fmt.Errorf("text %s has no font size", v.ID)
			}
		}
		return nil
	})
}
