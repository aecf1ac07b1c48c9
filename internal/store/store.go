// Package store loads, extends and writes the design document.
//
// Every mutation follows the same pipeline: load the file, locate every
// target page, append the new subtrees, serialize and re-parse the result,
// and only then overwrite the file. A failure at any step leaves the file
// as it was.
package store

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/logging"
	"github.com/conneroisu/pencraft/internal/node"
)

// Store reads and writes one document file.
type Store struct {
	path   string
	logger logging.Logger
}

// New returns a store for the document at path.
func New(path string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		path:   path,
		logger: logger.WithComponent("store"),
	}
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the document file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the raw document bytes.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ErrFileNotFound(s.path)
		}
		return nil, errors.WrapIO(err, errors.ErrCodeFileNotFound, "read document").WithFile(s.path)
	}
	return data, nil
}

// Load reads and decodes the document.
func (s *Store) Load(ctx context.Context) (*node.Document, error) {
	data, err := s.Read()
	if err != nil {
		return nil, err
	}
	doc, err := node.Decode(data)
	if err != nil {
		return nil, errors.ErrMalformedDocument(s.path, err)
	}
	s.logger.Debug(ctx, "Loaded document",
		"path", s.path,
		"shape", doc.Shape.String(),
		"pages", len(doc.Pages()),
		"bytes", len(data))
	return doc, nil
}

// Locate finds the single page with exactly the given name.
func Locate(doc *node.Document, name string) (*node.Frame, error) {
	matches := doc.PagesNamed(name)
	switch len(matches) {
	case 0:
		return nil, errors.ErrPageNotFound(name)
	case 1:
		return matches[0], nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return nil, errors.ErrPageAmbiguous(name, ids)
}

// Placement is a batch of new subtrees for one page.
type Placement struct {
	Page    string
	Section string
	Nodes   []node.Node
}

// PageUpdate summarizes what an append did to a page.
type PageUpdate struct {
	Page     string `json:"page" yaml:"page"`
	ID       string `json:"id" yaml:"id"`
	Added    int    `json:"added" yaml:"added"`
	Children int    `json:"children" yaml:"children"`
}

// Append adds nodes to the end of the named page.
func Append(doc *node.Document, page string, nodes ...node.Node) (PageUpdate, error) {
	updates, err := AppendAll(doc, []Placement{{Page: page, Nodes: nodes}})
	if err != nil {
		return PageUpdate{}, err
	}
	return updates[0], nil
}

// AppendAll applies several placements. Every page is located and every
// subtree verified before the first append, so on error the document is
// unchanged. Updates are returned per page in first-touched order.
func AppendAll(doc *node.Document, placements []Placement) ([]PageUpdate, error) {
	targets := make([]*node.Frame, len(placements))
	for i, p := range placements {
		page, err := Locate(doc, p.Page)
		if err != nil {
			if p.Section != "" {
				var pe *errors.PencraftError
				if stderrors.As(err, &pe) {
					pe.WithSection(p.Section)
				}
			}
			return nil, err
		}
		for _, n := range p.Nodes {
			if err := node.Verify(n); err != nil {
				return nil, errors.NewInternalError(errors.ErrCodeInvalidNode, "built node is incomplete", err).
					WithPage(p.Page).WithSection(p.Section)
			}
		}
		targets[i] = page
	}

	var updates []PageUpdate
	index := make(map[*node.Frame]int)
	for i, p := range placements {
		page := targets[i]
		page.Append(p.Nodes...)
		j, ok := index[page]
		if !ok {
			j = len(updates)
			index[page] = j
			updates = append(updates, PageUpdate{Page: page.Name, ID: page.ID})
		}
		updates[j].Added += len(p.Nodes)
		updates[j].Children = len(page.Children)
	}
	return updates, nil
}

// Validate serializes doc, parses the result back and checks that every id
// is unique. It returns the bytes to write.
func Validate(doc *node.Document) ([]byte, error) {
	data, err := node.Encode(doc)
	if err != nil {
		return nil, errors.ErrRoundTrip(err)
	}
	parsed, err := node.Decode(data)
	if err != nil {
		return nil, errors.ErrRoundTrip(err)
	}
	if dups := node.Duplicates(node.DocumentIDs(parsed)); len(dups) > 0 {
		return nil, errors.ErrDuplicateIDs(dups)
	}
	return data, nil
}

// Write validates doc and overwrites the file with it.
func (s *Store) Write(ctx context.Context, doc *node.Document) (int, error) {
	data, err := Validate(doc)
	if err != nil {
		return 0, err
	}
	if doc.Shape == node.ShapeArray && doc.HasLedger() {
		s.logger.Warn(ctx, nil, "Array document rewritten as an object to hold the section ledger",
			"path", s.path)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, errors.WrapIO(err, errors.ErrCodeWriteFailed, "create document directory").WithFile(s.path)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return 0, errors.WrapIO(err, errors.ErrCodeWriteFailed, "write document").WithFile(s.path)
	}
	return len(data), nil
}

// Commit writes doc and logs the pages the run touched.
func (s *Store) Commit(ctx context.Context, doc *node.Document, updates []PageUpdate) error {
	n, err := s.Write(ctx, doc)
	if err != nil {
		return err
	}
	for _, u := range updates {
		s.logger.Info(ctx, "Updated page",
			"page", u.Page,
			"id", u.ID,
			"added", u.Added,
			"children", u.Children)
	}
	s.logger.Info(ctx, "Wrote document", "path", s.path, "bytes", n)
	return nil
}

// Create writes a brand-new document. An existing file is only replaced
// when force is set.
func (s *Store) Create(ctx context.Context, doc *node.Document, force bool) error {
	if s.Exists() && !force {
		return errors.ErrDocumentExists(s.path)
	}
	var updates []PageUpdate
	for _, p := range doc.Pages() {
		updates = append(updates, PageUpdate{Page: p.Name, ID: p.ID, Added: len(p.Children), Children: len(p.Children)})
	}
	return s.Commit(ctx, doc, updates)
}
