package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/node"
)

func TestCreateTempProject(t *testing.T) {
	dir := CreateTempProject(t)
	info, err := os.Stat(filepath.Join(dir, "design"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg := CreateTestConfig(dir)
	assert.Equal(t, filepath.Join(dir, "design", "components.pen"), cfg.Document.Path)
	assert.Equal(t, config.DefaultPageNames, cfg.Pages.Names)
}

func TestWriteArrayDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.pen")
	WriteArrayDocument(t, path, "Forms", "Feedback")

	doc := ReadDocument(t, path)
	assert.Equal(t, node.ShapeArray, doc.Shape)
	pages := doc.Pages()
	require.Len(t, pages, 2)
	assert.Equal(t, "page1", pages[0].ID)
	assert.Equal(t, "Feedback", pages[1].Name)
	RequireUniqueIDs(t, doc)
}

func TestWaitForFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pen")
	WriteDocument(t, path, "[]")
	info, err := os.Stat(path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		later := info.ModTime().Add(time.Second)
		_ = os.Chtimes(path, later, later)
	}()
	WaitForFileChange(t, path, info.ModTime(), 2*time.Second)
}
