// Package testutils holds fixtures shared by pencraft's package tests.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/node"
)

// CreateTempProject creates a project directory with an empty design/
// folder and returns its path.
func CreateTempProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "design"), 0o755))
	return dir
}

// CreateTestConfig returns the default configuration with the document
// placed inside projectDir.
func CreateTestConfig(projectDir string) *config.Config {
	cfg := config.Default()
	cfg.Document.Path = filepath.Join(projectDir, config.DefaultDocumentPath)
	return cfg
}

// PageJSON renders an empty page frame the way the design tool saves one.
func PageJSON(id, name string) string {
	return fmt.Sprintf(
		`{"type":"frame","id":%q,"name":%q,"width":%d,"height":%d,"layout":"vertical","children":[]}`,
		id, name, config.DefaultPageWidth, config.DefaultPageHeight)
}

// WriteArrayDocument writes an array-shaped document holding one empty
// page per name, with ids page1, page2 and so on.
func WriteArrayDocument(t *testing.T, path string, names ...string) {
	t.Helper()
	pages := make([]string, len(names))
	for i, name := range names {
		pages[i] = PageJSON(fmt.Sprintf("page%d", i+1), name)
	}
	WriteDocument(t, path, "["+strings.Join(pages, ",")+"]")
}

// WriteDocument writes raw content to path, creating parent directories.
func WriteDocument(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ReadDocument decodes the document at path.
func ReadDocument(t *testing.T, path string) *node.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := node.Decode(data)
	require.NoError(t, err)
	return doc
}

// RequireUniqueIDs fails the test when any id repeats in doc.
func RequireUniqueIDs(t *testing.T, doc *node.Document) {
	t.Helper()
	dups := node.Duplicates(node.DocumentIDs(doc))
	require.Empty(t, dups, "duplicate ids in document")
}

// WaitForFileChange waits for a file to be modified (useful for testing file watchers)
func WaitForFileChange(
	t *testing.T,
	filePath string,
	originalModTime time.Time,
	timeout time.Duration,
) {
	t.Helper()
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		info, err := os.Stat(filePath)
		if err == nil && info.ModTime().After(originalModTime) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s was not modified within %v", filePath, timeout)
}
