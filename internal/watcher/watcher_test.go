package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestFilters(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "components.pen")

	same := SameFile(doc)
	assert.True(t, same(doc))
	assert.False(t, same(filepath.Join(dir, "other.pen")))
	assert.False(t, same(doc+".swp"))
}

func TestWatchFileMissingDirectory(t *testing.T) {
	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	err = watcher.WatchFile(filepath.Join(t.TempDir(), "missing", "doc.pen"))
	assert.Error(t, err)
}

func TestDebouncerKeepsLatestPerPath(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDebouncer(30 * time.Millisecond)
	go d.run(ctx)

	d.Add(ChangeEvent{Path: "b.pen", Type: EventTypeCreated})
	d.Add(ChangeEvent{Path: "a.pen", Type: EventTypeCreated})
	d.Add(ChangeEvent{Path: "b.pen", Type: EventTypeModified})

	select {
	case batch := <-d.Output():
		require.Len(t, batch, 2)
		assert.Equal(t, "a.pen", batch[0].Path)
		assert.Equal(t, "b.pen", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestNewDebouncerDefaultsDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewDebouncer(0).delay)
}

func TestWatchFileReportsOnlyTheDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "components.pen")
	require.NoError(t, os.WriteFile(doc, []byte("[]"), 0o644))

	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()
	require.NoError(t, watcher.WatchFile(doc))

	var mu sync.Mutex
	var seen []ChangeEvent
	done := make(chan struct{}, 1)
	watcher.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		seen = append(seen, events...)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	watcher.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte(`{"children":[]}`), 0o644))

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("no change reported")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	for _, e := range seen {
		assert.Equal(t, "components.pen", filepath.Base(e.Path))
	}
}
