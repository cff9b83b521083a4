package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, path string, onChange func(context.Context)) (*Watcher, func()) {
	t.Helper()
	w, err := New(path, 50*time.Millisecond, onChange)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("watcher never became ready")
	}

	return w, func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	}
}

func TestTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "03.txt")
	require.NoError(t, os.WriteFile(path, []byte("1*3\n"), 0644))

	var calls atomic.Int32
	w, stop := startWatcher(t, path, func(context.Context) { calls.Add(1) })
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("1*4\n"), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, w.Stats().Events, 1)
	assert.GreaterOrEqual(t, w.Stats().Triggers, 1)
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "03.txt")
	require.NoError(t, os.WriteFile(path, []byte("1*3\n"), 0644))

	var calls atomic.Int32
	w, stop := startWatcher(t, path, func(context.Context) { calls.Add(1) })
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "04.txt"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 0, w.Stats().Events)
}

func TestBurstIsDebounced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "03.txt")

	var calls atomic.Int32
	_, stop := startWatcher(t, path, func(context.Context) { calls.Add(1) })
	defer stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("1*3\n"), 0644))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "03.txt"), 0, func(context.Context) {})
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.Error(t, w.Run(context.Background()))
}
