package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// SuggestionContext provides context for generating suggestions
type SuggestionContext struct {
	Pages        []string
	Sections     []string
	Passes       []string
	ConfigPath   string
	DocumentPath string
}

// PageNotFoundSuggestions generates suggestions for a page name that matched nothing
func PageNotFoundSuggestions(name string, ctx *SuggestionContext) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "List the pages in the document",
			Description: "Page names match exactly, including case",
			Command:     "pencraft pages",
		},
	}

	if ctx == nil {
		return suggestions
	}

	if len(ctx.Pages) > 0 {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Available pages",
			Description: "These pages are in the document: " + strings.Join(ctx.Pages, ", "),
		})
	}

	if similar, ok := closest(name, ctx.Pages); ok {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Did you mean '" + similar + "'?",
			Description: "Similar page found",
			Command:     fmt.Sprintf("pencraft append --page %q ...", similar),
		})
	} else {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Generate the base pages",
			Description: "Pages are created by the base pass",
			Command:     "pencraft generate",
		})
	}

	return suggestions
}

// PageAmbiguousSuggestions generates suggestions for a name shared by several pages
func PageAmbiguousSuggestions(name string, ids []string) []ErrorSuggestion {
	return []ErrorSuggestion{
		{
			Title:       "Rename the duplicate pages",
			Description: fmt.Sprintf("Pages %s are all named %q; give each a distinct name in the design tool", strings.Join(ids, ", "), name),
		},
		{
			Title:   "Inspect the document",
			Command: "pencraft pages",
		},
	}
}

// SectionNotFoundSuggestions generates suggestions for an unknown section key
func SectionNotFoundSuggestions(key string, ctx *SuggestionContext) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "List registered sections",
			Description: "Section keys are lower-case and hyphenated",
			Command:     "pencraft sections",
		},
	}

	if ctx != nil {
		if similar, ok := closest(key, ctx.Sections); ok {
			suggestions = append(suggestions, ErrorSuggestion{
				Title:       "Did you mean '" + similar + "'?",
				Description: "Similar section found",
			})
		}
	}

	return suggestions
}

// PassSuggestions generates suggestions for unknown passes and unmet prerequisites
func PassSuggestions(pass string, missing []string, ctx *SuggestionContext) []ErrorSuggestion {
	var suggestions []ErrorSuggestion

	for _, m := range missing {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:   "Run the '" + m + "' pass first",
			Command: passCommand(m),
		})
	}

	if len(missing) == 0 && ctx != nil && len(ctx.Passes) > 0 {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Available passes",
			Description: strings.Join(ctx.Passes, ", "),
		})
		if similar, ok := closest(pass, ctx.Passes); ok {
			suggestions = append(suggestions, ErrorSuggestion{
				Title:   "Did you mean '" + similar + "'?",
				Command: passCommand(similar),
			})
		}
	}

	return suggestions
}

// ConfigurationSuggestions generates suggestions for configuration issues
func ConfigurationSuggestions(configError string, ctx *SuggestionContext) []ErrorSuggestion {
	configPath := ".pencraft.yml"
	if ctx != nil && ctx.ConfigPath != "" {
		configPath = ctx.ConfigPath
	}

	suggestions := []ErrorSuggestion{
		{
			Title:       "Check configuration file",
			Description: "Verify your .pencraft.yml file exists and has valid syntax",
			Command:     "cat " + configPath,
		},
		{
			Title:       "Review the effective configuration",
			Description: "The doctor command prints every resolved setting",
			Command:     "pencraft doctor",
		},
	}

	if strings.Contains(configError, "yaml") || strings.Contains(configError, "unmarshal") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Fix YAML syntax",
			Description: "There's a syntax error in your YAML configuration",
			Example:     "Use proper indentation and avoid tabs",
		})
	}

	if strings.Contains(configError, "passes") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Check pass definitions",
			Description: "Each pass needs a unique name and at least one registered section",
			Example:     "passes:\n  - name: charts\n    requires: [components-2]\n    sections:\n      - section: card",
		})
	}

	return suggestions
}

// Suggest picks suggestions for err based on its code.
func Suggest(err error, ctx *SuggestionContext) []ErrorSuggestion {
	var pe *PencraftError
	if !errors.As(err, &pe) {
		return nil
	}

	switch pe.Code {
	case ErrCodePageNotFound:
		return PageNotFoundSuggestions(pe.Page, ctx)
	case ErrCodePageAmbiguous:
		ids, _ := pe.Context["ids"].([]string)
		return PageAmbiguousSuggestions(pe.Page, ids)
	case ErrCodeSectionNotFound:
		return SectionNotFoundSuggestions(pe.Section, ctx)
	case ErrCodePassNotFound, ErrCodePassPrerequisite:
		pass, _ := pe.Context["pass"].(string)
		missing, _ := pe.Context["missing"].([]string)
		return PassSuggestions(pass, missing, ctx)
	case ErrCodeConfigInvalid:
		return ConfigurationSuggestions(pe.Error(), ctx)
	case ErrCodeDocumentExists:
		return []ErrorSuggestion{{
			Title:   "Overwrite the document",
			Command: "pencraft generate --force",
		}}
	case ErrCodeFileNotFound:
		return []ErrorSuggestion{{
			Title:       "Create the document",
			Description: "The base pass writes a fresh document",
			Command:     "pencraft generate",
		}}
	}
	return nil
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
		output.WriteString("\n")
	}

	return output.String()
}

// EnhancedError wraps an error with suggestions
type EnhancedError struct {
	OriginalError error
	Title         string
	Suggestions   []ErrorSuggestion
}

// Error implements the error interface
func (e *EnhancedError) Error() string {
	return FormatSuggestions(e.Title, e.Suggestions)
}

// Unwrap returns the original error
func (e *EnhancedError) Unwrap() error {
	return e.OriginalError
}

// NewEnhancedError creates a new enhanced error with suggestions
func NewEnhancedError(title string, originalError error, suggestions []ErrorSuggestion) *EnhancedError {
	return &EnhancedError{
		OriginalError: originalError,
		Title:         title,
		Suggestions:   suggestions,
	}
}

// Enhance attaches suggestions to err when any apply.
func Enhance(err error, ctx *SuggestionContext) error {
	suggestions := Suggest(err, ctx)
	if len(suggestions) == 0 {
		return err
	}
	return NewEnhancedError(err.Error(), err, suggestions)
}

func passCommand(pass string) string {
	if pass == "base" {
		return "pencraft generate"
	}
	return "pencraft extend " + pass
}

// closest returns the first candidate that contains name or is contained by
// it, ignoring case.
func closest(name string, candidates []string) (string, bool) {
	lower := strings.ToLower(name)
	if lower == "" {
		return "", false
	}
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, lower) || strings.Contains(lower, lc) {
			return c, true
		}
	}
	return "", false
}
