// Package schema emits a JSON Schema describing the documents pencraft
// writes, for editors and CI checks that want to validate them without
// running pencraft.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/conneroisu/pencraft/internal/node"
)

// ID is the schema's $id.
const ID = "https://github.com/conneroisu/pencraft/schema/document.json"

// Document returns the schema of a design document. Both persisted shapes
// are accepted: a bare array of pages, or an object carrying the section
// ledger alongside them.
func Document() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	defs := jsonschema.Definitions{}
	for _, v := range []any{&node.Frame{}, &node.Text{}, &node.IconRef{}, &node.Run{}} {
		s := r.Reflect(v)
		for name, def := range s.Definitions {
			defs[name] = def
		}
	}
	defs[node.NodeDefinition] = &jsonschema.Schema{
		Description: "A page tree node, discriminated by its type field.",
		OneOf: []*jsonschema.Schema{
			{Ref: "#/$defs/Frame"},
			{Ref: "#/$defs/Text"},
			{Ref: "#/$defs/IconRef"},
		},
	}

	pages := &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Ref: "#/$defs/Frame"},
	}

	ledger := jsonschema.NewProperties()
	ledger.Set("children", pages)
	ledger.Set("generatedSections", &jsonschema.Schema{
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string"},
		UniqueItems: true,
		Description: "Keys of every section a pass has written.",
	})
	ledger.Set("generationRuns", &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Ref: "#/$defs/Run"},
	})

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID(ID),
		Title:       "pencraft design document",
		Definitions: defs,
		OneOf: []*jsonschema.Schema{
			pages,
			{
				Type:       "object",
				Properties: ledger,
				Required:   []string{"children"},
			},
		},
	}
}

// Marshal renders the document schema as indented JSON.
func Marshal() ([]byte, error) {
	return json.MarshalIndent(Document(), "", "  ")
}
