package watch

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

func startWatcher(t *testing.T, root string) (<-chan []string, func()) {
	t.Helper()
	w, err := New(Config{Roots: []string{root}, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	batches := make(chan []string, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(paths []string) { batches <- paths })
	}()
	return batches, func() {
		cancel()
		<-done
		require.NoError(t, w.Close())
	}
}

func nextBatch(t *testing.T, batches <-chan []string) []string {
	t.Helper()
	select {
	case b := <-batches:
		return b
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return nil
	}
}

func TestReportsWrittenFiles(t *testing.T) {
	root := t.TempDir()
	batches, stop := startWatcher(t, root)
	defer stop()

	path := filepath.Join(root, "calc.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	assert.Contains(t, nextBatch(t, batches), path)
}

func TestWatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	batches, stop := startWatcher(t, root)
	defer stop()

	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher time to register the new directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(sub, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case b := <-batches:
			for _, p := range b {
				if p == path {
					return
				}
			}
		case <-deadline:
			t.Fatalf("change to %s not reported", path)
		}
	}
}

func TestMissingRoot(t *testing.T) {
	_, err := New(Config{Roots: []string{filepath.Join(t.TempDir(), "missing")}})
	assert.Error(t, err)
}

func TestCloseTwice(t *testing.T) {
	w, err := New(Config{Roots: []string{t.TempDir()}})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
