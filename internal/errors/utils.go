package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Wrap wraps an error with additional context, creating a PencraftError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *PencraftError {
	if err == nil {
		return nil
	}

	// If it's already a PencraftError, preserve its properties but update the message
	var pe *PencraftError
	if errors.As(err, &pe) {
		return &PencraftError{
			Type:     errType,
			Code:     code,
			Message:  message,
			Cause:    pe,
			Context:  pe.Context,
			Page:     pe.Page,
			Section:  pe.Section,
			FilePath: pe.FilePath,
		}
	}

	return &PencraftError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *PencraftError {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *PencraftError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// Code returns the code of the outermost PencraftError in err's chain.
func Code(err error) string {
	var pe *PencraftError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// FormatErrorWithSuggestions formats an error with suggestions for ValidationError types
func FormatErrorWithSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		result := ve.Error()
		suggestions := ve.Suggestions()
		if len(suggestions) > 0 {
			result += "\n\nSuggestions:"
			for _, suggestion := range suggestions {
				result += fmt.Sprintf("\n  • %s", suggestion)
			}
		}
		return result
	}

	var vec *ValidationErrorCollection
	if errors.As(err, &vec) {
		var lines []string
		for _, e := range vec.Errors {
			lines = append(lines, FormatErrorWithSuggestions(e))
		}
		return strings.Join(lines, "\n\n")
	}

	return FormatError(err)
}

// Severity ranks a document finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText lets findings render their severity by name in reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one problem discovered while checking a document.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code" yaml:"code"`
	Page     string   `json:"page,omitempty" yaml:"page,omitempty"`
	NodeID   string   `json:"node,omitempty" yaml:"node,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// Error implements the error interface
func (f Finding) Error() string {
	var b strings.Builder
	b.WriteString(f.Severity.String())
	if f.Code != "" {
		b.WriteString(" [" + f.Code + "]")
	}
	if f.Page != "" {
		b.WriteString(" page:" + f.Page)
	}
	if f.NodeID != "" {
		b.WriteString(" node:" + f.NodeID)
	}
	b.WriteString(" " + f.Message)
	return b.String()
}

// Collector gathers findings; it is safe for concurrent use.
type Collector struct {
	findings []Finding
	mutex    sync.RWMutex
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{findings: make([]Finding, 0)}
}

// Add records a finding.
func (c *Collector) Add(f Finding) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.findings = append(c.findings, f)
}

// Findings returns the findings ordered by severity (worst first), then
// page, then node id.
func (c *Collector) Findings() []Finding {
	c.mutex.RLock()
	result := make([]Finding, len(c.findings))
	copy(result, c.findings)
	c.mutex.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.NodeID < b.NodeID
	})
	return result
}

// HasErrors reports whether any finding is an error.
func (c *Collector) HasErrors() bool {
	return c.Count(SeverityError) > 0
}

// Count returns the number of findings of the given severity.
func (c *Collector) Count(s Severity) int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	n := 0
	for _, f := range c.findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Clear clears all findings
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.findings = c.findings[:0]
}
