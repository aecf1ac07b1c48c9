// Package registry maps section keys to their builders, target pages and
// id prefixes.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/idalloc"
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
)

// BuildFunc renders one section. It must draw every id from c.
type BuildFunc func(c *layout.Composer) *node.Frame

// SectionInfo describes a registered section builder.
type SectionInfo struct {
	Key         string
	Title       string
	Page        string
	Prefix      string
	Description string
	Order       int
	Build       BuildFunc
}

// SectionRegistry holds every known section.
type SectionRegistry struct {
	sections map[string]*SectionInfo
	mutex    sync.RWMutex
}

// NewSectionRegistry creates an empty registry.
func NewSectionRegistry() *SectionRegistry {
	return &SectionRegistry{
		sections: make(map[string]*SectionInfo),
	}
}

// TitleFor derives a display title from a section key.
func TitleFor(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}

// Register adds a section. Keys must be unique and prefixes letters only.
func (r *SectionRegistry) Register(info *SectionInfo) error {
	if info.Key == "" {
		return errors.NewValidationError(errors.ErrCodeSectionNotFound, "section key is empty")
	}
	if err := idalloc.ValidatePrefix(info.Prefix); err != nil {
		return errors.ErrInvalidPrefix(info.Key, info.Prefix, err)
	}
	if info.Build == nil {
		return errors.NewInternalError(errors.ErrCodeInternalError, "section has no builder", nil).
			WithSection(info.Key)
	}
	if info.Page == "" {
		return errors.NewValidationError(errors.ErrCodePageNotFound, "section has no target page").
			WithSection(info.Key)
	}
	if info.Title == "" {
		info.Title = TitleFor(info.Key)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.sections[info.Key]; exists {
		return errors.NewValidationError(errors.ErrCodeInternalError, "section registered twice").
			WithSection(info.Key)
	}
	r.sections[info.Key] = info
	return nil
}

// MustRegister is Register for built-in sections, which are known valid.
func (r *SectionRegistry) MustRegister(info *SectionInfo) {
	if err := r.Register(info); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Get retrieves a section by key.
func (r *SectionRegistry) Get(key string) (*SectionInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	info, exists := r.sections[key]
	return info, exists
}

// Lookup retrieves a section by key or reports ERR_SECTION_NOT_FOUND.
func (r *SectionRegistry) Lookup(key string) (*SectionInfo, error) {
	if info, ok := r.Get(key); ok {
		return info, nil
	}
	return nil, errors.ErrSectionNotFound(key)
}

// GetAll returns every section ordered by Order, then key.
func (r *SectionRegistry) GetAll() []*SectionInfo {
	r.mutex.RLock()
	result := make([]*SectionInfo, 0, len(r.sections))
	for _, info := range r.sections {
		result = append(result, info)
	}
	r.mutex.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Key < result[j].Key
	})
	return result
}

// Keys returns every section key in registry order.
func (r *SectionRegistry) Keys() []string {
	all := r.GetAll()
	keys := make([]string, len(all))
	for i, info := range all {
		keys[i] = info.Key
	}
	return keys
}

// ByPage returns the sections that target page, in registry order.
func (r *SectionRegistry) ByPage(page string) []*SectionInfo {
	var result []*SectionInfo
	for _, info := range r.GetAll() {
		if info.Page == page {
			result = append(result, info)
		}
	}
	return result
}

// Pages returns the target pages in order of their first section.
func (r *SectionRegistry) Pages() []string {
	var pages []string
	seen := make(map[string]bool)
	for _, info := range r.GetAll() {
		if !seen[info.Page] {
			seen[info.Page] = true
			pages = append(pages, info.Page)
		}
	}
	return pages
}

// Count returns the number of registered sections.
func (r *SectionRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.sections)
}

// Build renders the section with ids drawn from ids under the section's
// prefix, and checks the result is complete.
func (r *SectionRegistry) Build(key string, ids *idalloc.Allocator) (*node.Frame, error) {
	info, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	frame := info.Build(layout.NewComposer(ids, info.Prefix))
	if frame == nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidNode, "builder returned nothing", nil).
			WithSection(key)
	}
	if err := node.Verify(frame); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidNode, "built node is incomplete", err).
			WithSection(key)
	}
	return frame, nil
}
