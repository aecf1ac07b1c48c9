// Package services holds the business logic behind each CLI command.
package services

import (
	"context"
	"time"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/idalloc"
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/logging"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/passes"
	"github.com/conneroisu/pencraft/internal/registry"
	"github.com/conneroisu/pencraft/internal/store"
)

// pagePrefix issues ids for page frames.
const pagePrefix = "page"

// AppendPass is the run name used for ad-hoc appends in logs.
const AppendPass = "append"

// DocumentService generates and extends the design document.
type DocumentService struct {
	config   *config.Config
	store    *store.Store
	sections *registry.SectionRegistry
	passes   *passes.Catalog
	logger   logging.Logger
}

// NewDocumentService wires a service over the configured document.
func NewDocumentService(
	cfg *config.Config,
	sections *registry.SectionRegistry,
	catalog *passes.Catalog,
	logger logging.Logger,
) *DocumentService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &DocumentService{
		config:   cfg,
		store:    store.New(cfg.Document.Path, logger),
		sections: sections,
		passes:   catalog,
		logger:   logger.WithComponent("document"),
	}
}

// Store returns the underlying document store.
func (s *DocumentService) Store() *store.Store { return s.store }

// RunResult describes one pass or append applied to the document.
type RunResult struct {
	Pass     string             `json:"pass" yaml:"pass"`
	RunID    string             `json:"runId,omitempty" yaml:"runId,omitempty"`
	Written  []string           `json:"written" yaml:"written"`
	Skipped  []string           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Pages    []store.PageUpdate `json:"pages" yaml:"pages"`
	IDs      int                `json:"ids" yaml:"ids"`
	Duration time.Duration      `json:"duration" yaml:"duration"`
}

// Changed reports whether the run appended anything.
func (r *RunResult) Changed() bool { return len(r.Written) > 0 }

// GenerateOptions controls a full generation.
type GenerateOptions struct {
	Force bool
}

// Generate builds a new document: the configured page set, tiled down the
// canvas, followed by every built-in pass in prerequisite order.
func (s *DocumentService) Generate(ctx context.Context, opts GenerateOptions) ([]*RunResult, error) {
	perf := logging.StartOperation(s.logger, "generate")

	if s.store.Exists() && !opts.Force {
		err := errors.ErrDocumentExists(s.store.Path())
		perf.EndWithError(ctx, err)
		return nil, err
	}

	doc := node.NewDocument()
	ids := idalloc.New(s.config.IDs.Base)
	tiler := layout.NewTiler(s.config.Pages.BandHeight)
	composer := layout.NewComposer(ids, pagePrefix)
	for _, name := range s.config.Pages.Names {
		doc.Children = append(doc.Children, composer.Page(name, s.pageSpec(), tiler))
	}

	sequence, err := s.passes.Sequence()
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	var results []*RunResult
	for _, pass := range sequence {
		result, err := s.apply(ctx, doc, ids, pass, false)
		if err != nil {
			perf.EndWithError(ctx, err)
			return nil, err
		}
		results = append(results, result)
	}

	if err := s.store.Create(ctx, doc, opts.Force); err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	perf.End(ctx, "pages", len(doc.Pages()), "passes", len(results), "ids", ids.Total())
	return results, nil
}

// ExtendOptions selects a pass to run on the existing document.
type ExtendOptions struct {
	Pass  string
	Force bool
}

// Extend runs one pass on the existing document. Sections the ledger
// already records are skipped unless Force is set; with nothing to add the
// file is left untouched.
func (s *DocumentService) Extend(ctx context.Context, opts ExtendOptions) (*RunResult, error) {
	perf := logging.StartOperation(s.logger, "extend")

	pass, err := s.passes.Get(opts.Pass)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	doc, ids, err := s.load(ctx)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	result, err := s.apply(ctx, doc, ids, pass, opts.Force)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	if !result.Changed() {
		s.logger.Info(ctx, "Every section of the pass is already present", "pass", pass.Name)
		perf.End(ctx, "written", 0)
		return result, nil
	}
	if err := s.store.Commit(ctx, doc, result.Pages); err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	perf.End(ctx, "pass", pass.Name, "written", len(result.Written), "ids", result.IDs)
	return result, nil
}

// AppendOptions places sections outside any pass.
type AppendOptions struct {
	Sections []string
	// Page overrides each section's registered page.
	Page string
}

// Append builds the named sections and appends them, in order, to their
// pages. It ignores the ledger: appending a section twice adds it twice,
// each copy with fresh ids.
func (s *DocumentService) Append(ctx context.Context, opts AppendOptions) (*RunResult, error) {
	perf := logging.StartOperation(s.logger, "append")
	start := time.Now()

	if len(opts.Sections) == 0 {
		err := errors.NewValidationError(errors.ErrCodeSectionNotFound, "no sections to append")
		perf.EndWithError(ctx, err)
		return nil, err
	}
	doc, ids, err := s.load(ctx)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	before := ids.Total()
	placements := make([]store.Placement, 0, len(opts.Sections))
	for _, key := range opts.Sections {
		info, err := s.sections.Lookup(key)
		if err != nil {
			perf.EndWithError(ctx, err)
			return nil, err
		}
		page := opts.Page
		if page == "" {
			page = info.Page
		}
		frame, err := s.sections.Build(key, ids)
		if err != nil {
			perf.EndWithError(ctx, err)
			return nil, err
		}
		placements = append(placements, store.Placement{Page: page, Section: key, Nodes: []node.Node{frame}})
	}

	updates, err := store.AppendAll(doc, placements)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	if err := s.store.Commit(ctx, doc, updates); err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	result := &RunResult{
		Pass:     AppendPass,
		Written:  append([]string(nil), opts.Sections...),
		Pages:    updates,
		IDs:      ids.Total() - before,
		Duration: time.Since(start),
	}
	perf.End(ctx, "written", len(result.Written), "ids", result.IDs)
	return result, nil
}

// AddPages appends empty pages below the existing ones. Names already in
// use are reported and nothing is written.
func (s *DocumentService) AddPages(ctx context.Context, names []string) ([]store.PageUpdate, error) {
	doc, ids, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, errors.NewValidationError(errors.ErrCodePageNotFound, "page name is empty")
		}
		if len(doc.PagesNamed(name)) > 0 || seen[name] {
			return nil, errors.NewValidationError(errors.ErrCodePageAmbiguous, "page already exists").
				WithPage(name)
		}
		seen[name] = true
	}

	tiler := layout.NewTiler(s.config.Pages.BandHeight)
	tiler.ResumeAfter(doc.Pages())
	composer := layout.NewComposer(ids, pagePrefix)

	updates := make([]store.PageUpdate, 0, len(names))
	for _, name := range names {
		page := composer.Page(name, s.pageSpec(), tiler)
		doc.Children = append(doc.Children, page)
		updates = append(updates, store.PageUpdate{Page: name, ID: page.ID})
	}
	if err := s.store.Commit(ctx, doc, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// apply builds a pass's sections into doc and records the run. It does not
// write the file.
func (s *DocumentService) apply(
	ctx context.Context,
	doc *node.Document,
	ids *idalloc.Allocator,
	pass *passes.Pass,
	force bool,
) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{Pass: pass.Name}

	if missing := store.MissingPasses(doc, pass.Requires); len(missing) > 0 {
		if !force {
			return nil, errors.ErrPassPrerequisite(pass.Name, missing)
		}
		s.logger.Warn(ctx, nil, "Running pass without its prerequisites",
			"pass", pass.Name, "missing", missing)
	}

	before := ids.Total()
	var placements []store.Placement
	for _, pl := range pass.Placements {
		if store.HasSection(doc, pl.Section) && !force {
			result.Skipped = append(result.Skipped, pl.Section)
			s.logger.Debug(ctx, "Skipping generated section", "pass", pass.Name, "section", pl.Section)
			continue
		}
		info, err := s.sections.Lookup(pl.Section)
		if err != nil {
			return nil, err
		}
		frame, err := s.sections.Build(pl.Section, ids)
		if err != nil {
			return nil, err
		}
		placements = append(placements, store.Placement{
			Page:    pl.PageFor(info),
			Section: pl.Section,
			Nodes:   []node.Node{frame},
		})
		result.Written = append(result.Written, pl.Section)
	}
	if len(placements) == 0 {
		result.Duration = time.Since(start)
		return result, nil
	}

	updates, err := store.AppendAll(doc, placements)
	if err != nil {
		return nil, err
	}
	run := store.RecordRun(doc, pass.Name, result.Written)

	result.RunID = run.ID
	result.Pages = updates
	result.IDs = ids.Total() - before
	result.Duration = time.Since(start)
	s.logger.Debug(ctx, "Applied pass",
		"pass", pass.Name,
		"run", run.ID,
		"sections", len(result.Written),
		"skipped", len(result.Skipped))
	return result, nil
}

// load reads the document and seeds an allocator with its ids.
func (s *DocumentService) load(ctx context.Context) (*node.Document, *idalloc.Allocator, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := idalloc.New(s.config.IDs.Base)
	ids.Seed(doc)
	return doc, ids, nil
}

func (s *DocumentService) pageSpec() layout.PageSpec {
	return layout.PageSpec{
		Width:   s.config.Pages.Width,
		Height:  s.config.Pages.Height,
		Padding: s.config.Pages.Padding,
		Gap:     s.config.Pages.Gap,
	}
}
