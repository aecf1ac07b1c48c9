package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue is a configuration problem or advisory with suggestions.
type Issue struct {
	Field       string   `json:"field" yaml:"field"`
	Value       any      `json:"value,omitempty" yaml:"value,omitempty"`
	Message     string   `json:"message" yaml:"message"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(title string, issues []Issue) {
		if len(issues) == 0 {
			return
		}
		builder.WriteString(title + ":\n")
		for _, issue := range issues {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", issue.Field, issue.Message))
			for _, suggestion := range issue.Suggestions {
				builder.WriteString(fmt.Sprintf("    - %s\n", suggestion))
			}
		}
	}

	write("Validation Errors", vr.Errors)
	write("Validation Warnings", vr.Warnings)

	return builder.String()
}

// ValidateConfigWithDetails checks the configuration and adds advisories
// that do not stop a run.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{}

	if err := validateConfig(config); err != nil {
		result.Errors = append(result.Errors, Issue{Field: "config", Message: err.Error()})
	}

	if config.IDs.Base <= 1 {
		result.Warnings = append(result.Warnings, Issue{
			Field:   "ids.base",
			Value:   config.IDs.Base,
			Message: "ids start at the bottom of the number range",
			Suggestions: []string{
				"documents are seeded before each run, so this is safe for a single generator",
				"give each generator sharing the document its own base, such as 9000",
			},
		})
	}

	if gap := config.Pages.BandHeight - config.Pages.Height; gap >= 0 && gap < config.Pages.Gap {
		result.Warnings = append(result.Warnings, Issue{
			Field:   "pages.band_height",
			Value:   config.Pages.BandHeight,
			Message: fmt.Sprintf("pages are only %g apart on the canvas", gap),
		})
	}

	if _, err := os.Stat(config.Document.Path); err != nil {
		result.Warnings = append(result.Warnings, Issue{
			Field:       "document.path",
			Value:       config.Document.Path,
			Message:     "document does not exist yet",
			Suggestions: []string{"pencraft generate"},
		})
	}

	result.Valid = !result.HasErrors()

	return result
}
