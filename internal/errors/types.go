package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeDocument   ErrorType = "document"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// PencraftError is a structured error type with context.
type PencraftError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}
	Page     string
	Section  string
	FilePath string
}

// Error implements the error interface.
func (e *PencraftError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Section != "" {
		parts = append(parts, "section:"+e.Section)
	}

	if e.Page != "" {
		parts = append(parts, "page:"+e.Page)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PencraftError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *PencraftError) Is(target error) bool {
	var t *PencraftError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *PencraftError) WithContext(key string, value interface{}) *PencraftError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPage adds the page the error concerns.
func (e *PencraftError) WithPage(page string) *PencraftError {
	e.Page = page

	return e
}

// WithSection adds the section the error concerns.
func (e *PencraftError) WithSection(section string) *PencraftError {
	e.Section = section

	return e
}

// WithFile adds the document or config path.
func (e *PencraftError) WithFile(path string) *PencraftError {
	e.FilePath = path

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewDocumentError creates an error about the document's content.
func NewDocumentError(code, message string, cause error) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeDocument,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsDocumentError checks if an error concerns the document's content.
func IsDocumentError(err error) bool {
	var pe *PencraftError
	if errors.As(err, &pe) {
		return pe.Type == ErrorTypeDocument
	}

	return false
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error at a level matching its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var pe *PencraftError
	if !errors.As(err, &pe) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch pe.Type {
	case ErrorTypeValidation:
		h.logger.Warn(ctx, err, "Validation error occurred",
			"code", pe.Code,
			"page", pe.Page,
			"section", pe.Section)
	case ErrorTypeDocument:
		h.logger.Error(ctx, err, "Document error occurred",
			"code", pe.Code,
			"file", pe.FilePath,
			"page", pe.Page)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", pe.Type,
			"code", pe.Code)
	}
}

// Error codes.
const (
	ErrCodeMalformedDocument = "ERR_MALFORMED_DOCUMENT"
	ErrCodePageNotFound      = "ERR_PAGE_NOT_FOUND"
	ErrCodePageAmbiguous     = "ERR_PAGE_AMBIGUOUS"
	ErrCodeRoundTrip         = "ERR_ROUND_TRIP"
	ErrCodeDuplicateID       = "ERR_DUPLICATE_ID"
	ErrCodeInvalidNode       = "ERR_INVALID_NODE"
	ErrCodePassPrerequisite  = "ERR_PASS_PREREQUISITE"
	ErrCodePassNotFound      = "ERR_PASS_NOT_FOUND"
	ErrCodeSectionNotFound   = "ERR_SECTION_NOT_FOUND"
	ErrCodeDocumentExists    = "ERR_DOCUMENT_EXISTS"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodeInvalidPrefix     = "ERR_INVALID_PREFIX"
	ErrCodeWriteFailed       = "ERR_WRITE_FAILED"
	ErrCodeInternalError     = "ERR_INTERNAL"
	ErrCodeValidationFailed  = "ERR_VALIDATION_FAILED"
)

// ValidationError interface for field-specific validation errors.
type ValidationError interface {
	error
	Field() string
	Value() interface{}
	Suggestions() []string
}

// FieldValidationError implements ValidationError for specific field errors.
type FieldValidationError struct {
	FieldName    string
	FieldValue   interface{}
	ErrorMessage string
	HelpText     []string
}

// Error implements the error interface.
func (fve *FieldValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fve.FieldName, fve.ErrorMessage)
}

// Field returns the field name that failed validation.
func (fve *FieldValidationError) Field() string {
	return fve.FieldName
}

// Value returns the invalid value.
func (fve *FieldValidationError) Value() interface{} {
	return fve.FieldValue
}

// Suggestions returns helpful suggestions for fixing the error.
func (fve *FieldValidationError) Suggestions() []string {
	return fve.HelpText
}

// NewFieldValidationError creates a new field validation error.
func NewFieldValidationError(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) *FieldValidationError {
	return &FieldValidationError{
		FieldName:    field,
		FieldValue:   value,
		ErrorMessage: message,
		HelpText:     suggestions,
	}
}

// ValidationErrorCollection represents a collection of validation errors.
type ValidationErrorCollection struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (vec *ValidationErrorCollection) Error() string {
	if len(vec.Errors) == 0 {
		return "no validation errors"
	}
	if len(vec.Errors) == 1 {
		return vec.Errors[0].Error()
	}

	return fmt.Sprintf("validation failed with %d errors", len(vec.Errors))
}

// Add adds a validation error to the collection.
func (vec *ValidationErrorCollection) Add(err ValidationError) {
	vec.Errors = append(vec.Errors, err)
}

// AddField adds a field validation error to the collection.
func (vec *ValidationErrorCollection) AddField(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) {
	vec.Add(NewFieldValidationError(field, value, message, suggestions...))
}

// HasErrors returns true if there are any validation errors.
func (vec *ValidationErrorCollection) HasErrors() bool {
	return len(vec.Errors) > 0
}

// ToPencraftError converts the collection to a configuration error.
func (vec *ValidationErrorCollection) ToPencraftError() *PencraftError {
	if !vec.HasErrors() {
		return nil
	}

	var messages []string
	context := make(map[string]interface{})

	for _, err := range vec.Errors {
		messages = append(messages, err.Error())
		context[err.Field()] = map[string]interface{}{
			"value":       err.Value(),
			"suggestions": err.Suggestions(),
		}
	}

	return &PencraftError{
		Type:    ErrorTypeConfig,
		Code:    ErrCodeConfigInvalid,
		Message: strings.Join(messages, "; "),
		Context: context,
	}
}

// Helper functions for common errors

// ErrMalformedDocument reports a document that could not be decoded.
func ErrMalformedDocument(path string, cause error) *PencraftError {
	return NewDocumentError(ErrCodeMalformedDocument, "document is not valid JSON in a known shape", cause).
		WithFile(path)
}

// ErrFileNotFound reports a missing document or config file.
func ErrFileNotFound(path string) *PencraftError {
	return NewIOError(ErrCodeFileNotFound, "file not found", nil).WithFile(path)
}

// ErrDocumentExists reports a refusal to overwrite an existing document.
func ErrDocumentExists(path string) *PencraftError {
	return NewValidationError(ErrCodeDocumentExists, "document already exists; pass --force to overwrite").
		WithFile(path)
}

// ErrPageNotFound reports that no top-level frame has the given name.
func ErrPageNotFound(name string) *PencraftError {
	return NewValidationError(ErrCodePageNotFound, "no page named "+quote(name)).WithPage(name)
}

// ErrPageAmbiguous reports that several top-level frames share a name.
func ErrPageAmbiguous(name string, ids []string) *PencraftError {
	return NewValidationError(
		ErrCodePageAmbiguous,
		fmt.Sprintf("%d pages named %s (%s)", len(ids), quote(name), strings.Join(ids, ", ")),
	).WithPage(name).WithContext("ids", ids)
}

// ErrSectionNotFound reports an unregistered section key.
func ErrSectionNotFound(key string) *PencraftError {
	return NewValidationError(ErrCodeSectionNotFound, "unknown section "+quote(key)).WithSection(key)
}

// ErrPassNotFound reports an undefined generation pass.
func ErrPassNotFound(name string) *PencraftError {
	return NewValidationError(ErrCodePassNotFound, "unknown pass "+quote(name)).WithContext("pass", name)
}

// ErrPassPrerequisite reports a pass run before the passes it builds on.
func ErrPassPrerequisite(pass string, missing []string) *PencraftError {
	return NewValidationError(
		ErrCodePassPrerequisite,
		fmt.Sprintf("pass %s requires %s to have run first", quote(pass), strings.Join(missing, ", ")),
	).WithContext("pass", pass).WithContext("missing", missing)
}

// ErrDuplicateIDs reports ids that appear more than once in a document.
func ErrDuplicateIDs(ids []string) *PencraftError {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return NewDocumentError(
		ErrCodeDuplicateID,
		"duplicate node ids: "+strings.Join(sorted, ", "),
		nil,
	).WithContext("ids", sorted)
}

// ErrRoundTrip reports a serialized document that does not parse back.
func ErrRoundTrip(cause error) *PencraftError {
	return NewInternalError(ErrCodeRoundTrip, "serialized document does not parse back", cause)
}

// ErrInvalidPrefix reports an id prefix that is not letters only.
func ErrInvalidPrefix(section, prefix string, cause error) *PencraftError {
	return &PencraftError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeInvalidPrefix,
		Message: "invalid id prefix " + quote(prefix),
		Cause:   cause,
		Section: section,
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
