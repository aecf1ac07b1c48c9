package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPencraftErrorFormatting(t *testing.T) {
	err := ErrPageNotFound("Forms")
	assert.Equal(t, `[ERR_PAGE_NOT_FOUND] page:Forms no page named "Forms"`, err.Error())

	wrapped := ErrMalformedDocument("design/x.pen", fmt.Errorf("unexpected EOF"))
	assert.Equal(t,
		`[ERR_MALFORMED_DOCUMENT] design/x.pen document is not valid JSON in a known shape: unexpected EOF`,
		wrapped.Error())
}

func TestPencraftErrorIs(t *testing.T) {
	err := fmt.Errorf("append: %w", ErrPageNotFound("Forms"))

	assert.True(t, errors.Is(err, ErrPageNotFound("Overlays")))
	assert.False(t, errors.Is(err, ErrSectionNotFound("button")))
}

func TestWrapPreservesContext(t *testing.T) {
	inner := ErrPageAmbiguous("Forms", []string{"page1", "page7"})
	outer := Wrap(inner, ErrorTypeDocument, ErrCodeMalformedDocument, "append failed")

	require.NotNil(t, outer)
	assert.Equal(t, "Forms", outer.Page)
	assert.Equal(t, []string{"page1", "page7"}, outer.Context["ids"])
	assert.Equal(t, ErrCodeMalformedDocument, Code(outer))
	assert.Same(t, inner, outer.Unwrap())
	assert.True(t, IsDocumentError(outer))

	assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))
}

func TestWrapPlainError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WrapIO(cause, ErrCodeWriteFailed, "write document")

	assert.Equal(t, ErrorTypeIO, err.Type)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorTypeConfig, WrapConfig(cause, ErrCodeConfigInvalid, "read config").Type)
}

func TestErrDuplicateIDsSorted(t *testing.T) {
	err := ErrDuplicateIDs([]string{"btn9002", "alert9000"})

	assert.Contains(t, err.Error(), "alert9000, btn9002")
	assert.True(t, IsDocumentError(err))
}

func TestValidationErrorCollection(t *testing.T) {
	var vec ValidationErrorCollection
	assert.Nil(t, vec.ToPencraftError())

	vec.AddField("ids.base", -1, "must not be negative", "use 1 or a namespace such as 9000")
	vec.AddField("pages.width", 0, "must be positive")

	assert.Equal(t, "validation failed with 2 errors", vec.Error())
	pe := vec.ToPencraftError()
	require.NotNil(t, pe)
	assert.Equal(t, ErrCodeConfigInvalid, pe.Code)
	assert.Contains(t, pe.Message, "ids.base")

	formatted := FormatErrorWithSuggestions(&vec)
	assert.Contains(t, formatted, "use 1 or a namespace such as 9000")
}

func TestCollectorOrdering(t *testing.T) {
	c := NewCollector()
	c.Add(Finding{Severity: SeverityWarning, Page: "Forms", Message: "tall"})
	c.Add(Finding{Severity: SeverityError, Code: ErrCodeDuplicateID, NodeID: "btn1", Message: "dup"})
	c.Add(Finding{Severity: SeverityWarning, Page: "Actions", Message: "tall"})

	got := c.Findings()
	require.Len(t, got, 3)
	assert.Equal(t, SeverityError, got[0].Severity)
	assert.Equal(t, "Actions", got[1].Page)
	assert.Equal(t, "Forms", got[2].Page)
	assert.True(t, c.HasErrors())
	assert.Equal(t, 2, c.Count(SeverityWarning))
	assert.Equal(t, "error [ERR_DUPLICATE_ID] node:btn1 dup", got[0].Error())

	c.Clear()
	assert.Empty(t, c.Findings())
	assert.False(t, c.HasErrors())
}

type recordingLogger struct {
	errors, warnings []string
}

func (l *recordingLogger) Error(_ context.Context, _ error, msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) Warn(_ context.Context, _ error, msg string, _ ...interface{}) {
	l.warnings = append(l.warnings, msg)
}

func TestErrorHandler(t *testing.T) {
	logger := &recordingLogger{}
	h := NewErrorHandler(logger)

	h.Handle(context.Background(), nil)
	h.Handle(context.Background(), ErrPageNotFound("Forms"))
	h.Handle(context.Background(), ErrDuplicateIDs([]string{"a1"}))
	h.Handle(context.Background(), fmt.Errorf("plain"))

	assert.Equal(t, []string{"Validation error occurred"}, logger.warnings)
	assert.Equal(t, []string{"Document error occurred", "Unhandled error occurred"}, logger.errors)
}
