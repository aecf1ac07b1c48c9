package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	frameFields = jsonFields(reflect.TypeOf(Frame{}))
	textFields  = jsonFields(reflect.TypeOf(Text{}))
	iconFields  = jsonFields(reflect.TypeOf(IconRef{}))
)

// jsonFields lists the JSON keys a struct models, plus the type tag.
func jsonFields(t reflect.Type) map[string]bool {
	fields := map[string]bool{"type": true}
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = true
	}
	return fields
}

// DecodeNode decodes a single node, dispatching on its "type" field.
func DecodeNode(data []byte) (Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("node must be a JSON object")
	}
	kind := gjson.GetBytes(data, "type")
	switch Kind(kind.String()) {
	case KindFrame:
		f := &Frame{}
		if err := json.Unmarshal(data, f); err != nil {
			return nil, err
		}
		return f, nil
	case KindText:
		t := &Text{}
		if err := json.Unmarshal(data, t); err != nil {
			return nil, err
		}
		return t, nil
	case KindIcon:
		i := &IconRef{}
		if err := json.Unmarshal(data, i); err != nil {
			return nil, err
		}
		return i, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("node is not valid JSON")
	}
	return &Raw{
		Type: kind.String(),
		ID:   gjson.GetBytes(data, "id").String(),
		Data: append(json.RawMessage(nil), data...),
	}, nil
}

func decodeChildren(raws []json.RawMessage) (Children, error) {
	if raws == nil {
		return nil, nil
	}
	children := make(Children, 0, len(raws))
	for i, raw := range raws {
		child, err := DecodeNode(raw)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// MarshalJSON writes the frame with its type tag and any preserved fields.
// A frame without both dimensions is an error.
func (f Frame) MarshalJSON() ([]byte, error) {
	if f.Width.IsZero() || f.Height.IsZero() {
		return nil, fmt.Errorf("frame %s (%q) is missing width or height", f.ID, f.Name)
	}
	type alias Frame
	return encodeWithExtra(struct {
		Type Kind `json:"type"`
		*alias
	}{KindFrame, (*alias)(&f)}, f.Extra, frameFields)
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	type alias Frame
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	children, err := decodeChildren(aux.Children)
	if err != nil {
		return fmt.Errorf("frame %q: %w", f.ID, err)
	}
	f.Children = children

	// Children decode themselves; only this frame's own keys are checked.
	shallow := *f
	shallow.Children = nil
	shallow.Extra = nil
	encoded, _ := json.Marshal((*alias)(&shallow))
	f.Extra, err = collectExtra(data, frameFields, encoded)
	return err
}

func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return encodeWithExtra(struct {
		Type Kind `json:"type"`
		*alias
	}{KindText, (*alias)(&t)}, t.Extra, textFields)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	type alias Text
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	t.Extra = nil
	encoded, _ := json.Marshal((*alias)(t))
	var err error
	t.Extra, err = collectExtra(data, textFields, encoded)
	return err
}

func (i IconRef) MarshalJSON() ([]byte, error) {
	if i.Width.IsZero() || i.Height.IsZero() {
		return nil, fmt.Errorf("icon %s is missing width or height", i.ID)
	}
	type alias IconRef
	return encodeWithExtra(struct {
		Type Kind `json:"type"`
		*alias
	}{KindIcon, (*alias)(&i)}, i.Extra, iconFields)
}

func (i *IconRef) UnmarshalJSON(data []byte) error {
	type alias IconRef
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return err
	}
	i.Extra = nil
	encoded, _ := json.Marshal((*alias)(i))
	var err error
	i.Extra, err = collectExtra(data, iconFields, encoded)
	return err
}

// MarshalJSON writes the original bytes.
func (r Raw) MarshalJSON() ([]byte, error) {
	if len(r.Data) == 0 {
		return nil, fmt.Errorf("raw node %q has no data", r.ID)
	}
	return r.Data, nil
}

// encodeWithExtra marshals v and splices the preserved fields in before the
// closing brace, sorted by key so output is stable. A preserved modeled
// field gives way once the node sets it, so no key is written twice.
func encodeWithExtra(v any, extra map[string]json.RawMessage, known map[string]bool) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if known[k] && gjson.GetBytes(data, k).Exists() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// collectExtra returns the object's keys that are not modeled, plus the
// modeled ones missing from encoded, or nil. encoded is the node's own
// encoding without its children; when it is nil only unmodeled keys are
// returned.
func collectExtra(data []byte, known map[string]bool, encoded []byte) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for k, v := range all {
		if known[k] && (encoded == nil || k == "type" || k == "children" || gjson.GetBytes(encoded, k).Exists()) {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = v
	}
	return extra, nil
}
