package store

import (
	"github.com/google/uuid"

	"github.com/conneroisu/pencraft/internal/node"
)

// HasSection reports whether the ledger records key as generated.
func HasSection(doc *node.Document, key string) bool {
	for _, s := range doc.GeneratedSections {
		if s == key {
			return true
		}
	}
	return false
}

// HasRun reports whether any recorded run belongs to pass.
func HasRun(doc *node.Document, pass string) bool {
	for _, r := range doc.Runs {
		if r.Pass == pass {
			return true
		}
	}
	return false
}

// MissingPasses returns the required passes with no recorded run, in order.
func MissingPasses(doc *node.Document, requires []string) []string {
	var missing []string
	for _, p := range requires {
		if !HasRun(doc, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// RecordRun appends a run entry and adds its sections to the generated set.
func RecordRun(doc *node.Document, pass string, sections []string) node.Run {
	run := node.Run{
		ID:       uuid.New().String(),
		Pass:     pass,
		Sections: append([]string{}, sections...),
	}
	doc.Runs = append(doc.Runs, run)
	for _, s := range sections {
		if !HasSection(doc, s) {
			doc.GeneratedSections = append(doc.GeneratedSections, s)
		}
	}
	return run
}
