package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx, path)
	require.NoError(t, err)

	// A write to a sibling file must not notify.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.bin"), []byte("x"), 0600))

	select {
	case <-changes:
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_ClosesChannelOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())

	changes, err := w.Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		require.False(t, ok, "channel should be closed, not delivering")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "sample.bin"))

	require.Error(t, err)
}
