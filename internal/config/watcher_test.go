package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 6\n"), 0o600))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { assert.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 9\npacing:\n  merge_ms: 10\n"), 0o600))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, 9, cfg.Board.Size)
		assert.Equal(t, 10, cfg.Pacing.MergeMS)
	case <-time.After(5 * time.Second):
		t.Fatal("no config update after writing the file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 6\n"), 0o600))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
	assert.NoError(t, w.Stop())
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 6\n"), 0o600))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not exit after cancel")
	}
	assert.NoError(t, w.Stop())
}
