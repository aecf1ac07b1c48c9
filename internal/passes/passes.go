// Package passes defines generation passes: named, ordered sets of section
// placements that may require earlier passes to have run on the document.
package passes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/registry"
)

// Built-in pass names.
const (
	Base         = "base"
	Components1  = "components-1"
	Components2  = "components-2"
	pageFromInfo = ""
)

// Placement puts a section on a page. An empty Page means the page the
// section is registered for.
type Placement struct {
	Section string `json:"section" yaml:"section"`
	Page    string `json:"page,omitempty" yaml:"page,omitempty"`
}

// Pass is a named batch of placements.
type Pass struct {
	Name       string      `json:"name" yaml:"name"`
	Requires   []string    `json:"requires,omitempty" yaml:"requires,omitempty"`
	Placements []Placement `json:"sections" yaml:"sections"`
	Builtin    bool        `json:"builtin" yaml:"builtin"`
}

// Sections returns the section keys in placement order.
func (p *Pass) Sections() []string {
	keys := make([]string, len(p.Placements))
	for i, pl := range p.Placements {
		keys[i] = pl.Section
	}
	return keys
}

// PageFor resolves the page a placement targets.
func (p Placement) PageFor(info *registry.SectionInfo) string {
	if p.Page != pageFromInfo {
		return p.Page
	}
	return info.Page
}

func place(keys ...string) []Placement {
	out := make([]Placement, len(keys))
	for i, k := range keys {
		out[i] = Placement{Section: k}
	}
	return out
}

// builtinPasses split the built-in sections into three stages. base also
// creates the page set.
func builtinPasses() []*Pass {
	return []*Pass{
		{
			Name:       Base,
			Placements: place("heading", "text", "button", "badge", "toggle-group", "input", "checkbox", "switch"),
			Builtin:    true,
		},
		{
			Name:     Components1,
			Requires: []string{Base},
			Placements: place("slider", "color-picker", "calendar",
				"blockquote", "code", "icon", "image", "avatar", "card", "data-table"),
			Builtin: true,
		},
		{
			Name:     Components2,
			Requires: []string{Components1},
			Placements: place("alert", "toast", "progress",
				"dialog", "command", "tooltip",
				"tabs", "breadcrumb", "announcement"),
			Builtin: true,
		},
	}
}

// Catalog holds the known passes in definition order.
type Catalog struct {
	passes map[string]*Pass
	order  []string
	mutex  sync.RWMutex
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{passes: make(map[string]*Pass)}
}

// Builtin returns a catalog holding the built-in passes.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, p := range builtinPasses() {
		if err := c.Add(p); err != nil {
			panic(err)
		}
	}
	return c
}

// Load returns the built-in passes followed by the configured ones.
func Load(cfg []config.PassConfig) (*Catalog, error) {
	c := Builtin()
	for _, pc := range cfg {
		p := &Pass{Name: pc.Name, Requires: append([]string(nil), pc.Requires...)}
		for _, s := range pc.Sections {
			p.Placements = append(p.Placements, Placement{Section: s.Section, Page: s.Page})
		}
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a pass. Names must be unique.
func (c *Catalog) Add(p *Pass) error {
	if p.Name == "" {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "pass name is empty")
	}
	if len(p.Placements) == 0 {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "pass has no sections").
			WithContext("pass", p.Name)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.passes[p.Name]; exists {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "pass defined twice").
			WithContext("pass", p.Name)
	}
	c.passes[p.Name] = p
	c.order = append(c.order, p.Name)
	return nil
}

// Get returns the named pass or ERR_PASS_NOT_FOUND.
func (c *Catalog) Get(name string) (*Pass, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if p, ok := c.passes[name]; ok {
		return p, nil
	}
	return nil, errors.ErrPassNotFound(name)
}

// Names returns pass names in definition order.
func (c *Catalog) Names() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return append([]string(nil), c.order...)
}

// All returns every pass in definition order.
func (c *Catalog) All() []*Pass {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]*Pass, len(c.order))
	for i, name := range c.order {
		out[i] = c.passes[name]
	}
	return out
}

// Sequence orders the built-in passes so every pass follows its
// prerequisites. It is the order a full generation runs them in.
func (c *Catalog) Sequence() ([]*Pass, error) {
	var builtin []*Pass
	for _, p := range c.All() {
		if p.Builtin {
			builtin = append(builtin, p)
		}
	}
	return c.sort(builtin)
}

// Validate checks that every placement names a registered section, every
// prerequisite is a known pass and no pass depends on itself.
func (c *Catalog) Validate(reg *registry.SectionRegistry) error {
	collection := &errors.ValidationErrorCollection{}
	for _, p := range c.All() {
		for _, pl := range p.Placements {
			if _, ok := reg.Get(pl.Section); !ok {
				collection.AddField(fmt.Sprintf("passes.%s.sections", p.Name), pl.Section,
					"unknown section "+pl.Section)
			}
		}
		for _, r := range p.Requires {
			if _, err := c.Get(r); err != nil {
				collection.AddField(fmt.Sprintf("passes.%s.requires", p.Name), r,
					"unknown pass "+r)
			}
		}
	}
	if collection.HasErrors() {
		return collection.ToPencraftError()
	}
	if _, err := c.sort(c.All()); err != nil {
		return err
	}
	return nil
}

// sort orders passes topologically, keeping definition order among
// independent passes.
func (c *Catalog) sort(list []*Pass) ([]*Pass, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(list))
	index := make(map[string]int, len(list))
	for i, p := range list {
		index[p.Name] = i
	}

	var out []*Pass
	var visit func(p *Pass) error
	visit = func(p *Pass) error {
		switch state[p.Name] {
		case done:
			return nil
		case visiting:
			return errors.NewConfigError(errors.ErrCodeConfigInvalid, "passes depend on each other in a cycle").
				WithContext("pass", p.Name)
		}
		state[p.Name] = visiting
		reqs := append([]string(nil), p.Requires...)
		sort.SliceStable(reqs, func(i, j int) bool { return index[reqs[i]] < index[reqs[j]] })
		for _, r := range reqs {
			if i, ok := index[r]; ok {
				if err := visit(list[i]); err != nil {
					return err
				}
			}
		}
		state[p.Name] = done
		out = append(out, p)
		return nil
	}
	for _, p := range list {
		if err := visit(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}
