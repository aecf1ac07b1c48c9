package services

import (
	"context"
	"fmt"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/logging"
	"github.com/conneroisu/pencraft/internal/node"
	"github.com/conneroisu/pencraft/internal/store"
)

// Finding codes that only the checker reports.
const (
	CodeBandOverflow   = "BAND_OVERFLOW"
	CodeMissingPage    = "MISSING_PAGE"
	CodeUnknownSection = "UNKNOWN_SECTION"
)

// CheckOptions selects the optional checks.
type CheckOptions struct {
	// Bands estimates each page's content height and warns when it
	// outgrows the tiling band.
	Bands bool
}

// PassStatus says whether a pass has run and whether it could run now.
type PassStatus struct {
	Name    string   `json:"name" yaml:"name"`
	Done    bool     `json:"done" yaml:"done"`
	Ready   bool     `json:"ready" yaml:"ready"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Report is the outcome of checking the document.
type Report struct {
	Path      string            `json:"path" yaml:"path"`
	Shape     string            `json:"shape" yaml:"shape"`
	Pages     int               `json:"pages" yaml:"pages"`
	Nodes     int               `json:"nodes" yaml:"nodes"`
	Bytes     int               `json:"bytes" yaml:"bytes"`
	Passes    []PassStatus      `json:"passes" yaml:"passes"`
	Overflows []layout.Overflow `json:"overflows,omitempty" yaml:"overflows,omitempty"`
	Findings  []errors.Finding  `json:"findings" yaml:"findings"`
}

// HasErrors reports whether any finding is an error.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == errors.SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of findings at severity s.
func (r *Report) Count(s errors.Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Check loads the document and runs the same validation a write would,
// plus structural checks a write does not make. A document that cannot be
// read or decoded is an error; everything else becomes a finding.
func (s *DocumentService) Check(ctx context.Context, opts CheckOptions) (*Report, error) {
	perf := logging.StartOperation(s.logger, "check")

	data, err := s.store.Read()
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	report := &Report{
		Path:  s.store.Path(),
		Shape: doc.Shape.String(),
		Pages: len(doc.Pages()),
		Nodes: len(node.DocumentIDs(doc)),
		Bytes: len(data),
	}
	findings := errors.NewCollector()

	if _, err := store.Validate(doc); err != nil {
		findings.Add(errors.Finding{
			Severity: errors.SeverityError,
			Code:     errors.Code(err),
			Message:  err.Error(),
		})
	}

	s.checkPages(doc, findings)
	s.checkLedger(doc, findings)
	report.Passes = s.passStatus(doc)

	if opts.Bands {
		report.Overflows = layout.Overflows(doc.Pages(), s.config.Pages.BandHeight)
		for _, o := range report.Overflows {
			findings.Add(errors.Finding{
				Severity: errors.SeverityWarning,
				Code:     CodeBandOverflow,
				Page:     o.Page,
				NodeID:   o.ID,
				Message:  fmt.Sprintf("content is about %.0fpx tall, past the %.0fpx band; it will overlap the next page", o.Content, o.Band),
			})
		}
	}

	report.Findings = findings.Findings()
	perf.End(ctx,
		"pages", report.Pages,
		"errors", report.Count(errors.SeverityError),
		"warnings", report.Count(errors.SeverityWarning))
	return report, nil
}

// checkPages reports duplicate page names, which make lookups ambiguous,
// and configured pages that are missing.
func (s *DocumentService) checkPages(doc *node.Document, findings *errors.Collector) {
	counts := make(map[string]int)
	for _, p := range doc.Pages() {
		counts[p.Name]++
	}
	reported := make(map[string]bool)
	for _, p := range doc.Pages() {
		if counts[p.Name] > 1 && !reported[p.Name] {
			reported[p.Name] = true
			findings.Add(errors.Finding{
				Severity: errors.SeverityError,
				Code:     errors.ErrCodePageAmbiguous,
				Page:     p.Name,
				Message:  fmt.Sprintf("%d pages share this name", counts[p.Name]),
			})
		}
	}
	for _, name := range s.config.Pages.Names {
		if counts[name] == 0 {
			findings.Add(errors.Finding{
				Severity: errors.SeverityWarning,
				Code:     CodeMissingPage,
				Page:     name,
				Message:  "configured page is not in the document",
			})
		}
	}
}

// checkLedger reports ledger entries naming sections this build does not
// know, which usually means the document came from a newer version.
func (s *DocumentService) checkLedger(doc *node.Document, findings *errors.Collector) {
	for _, key := range doc.GeneratedSections {
		if _, ok := s.sections.Get(key); !ok {
			findings.Add(errors.Finding{
				Severity: errors.SeverityInfo,
				Code:     CodeUnknownSection,
				Message:  fmt.Sprintf("ledger records unknown section %q", key),
			})
		}
	}
}

func (s *DocumentService) passStatus(doc *node.Document) []PassStatus {
	all := s.passes.All()
	out := make([]PassStatus, 0, len(all))
	for _, p := range all {
		missing := store.MissingPasses(doc, p.Requires)
		out = append(out, PassStatus{
			Name:    p.Name,
			Done:    store.HasRun(doc, p.Name),
			Ready:   len(missing) == 0,
			Missing: missing,
		})
	}
	return out
}
