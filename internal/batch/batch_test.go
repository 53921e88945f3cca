package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/imyousuf/CodeMetrics/internal/analyzer"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingAnalyzer fails for paths in fail and tracks peak concurrency.
type countingAnalyzer struct {
	fail    map[string]bool
	active  atomic.Int32
	peak    atomic.Int32
	release chan struct{}
}

func (c *countingAnalyzer) AnalyzeFileContext(ctx context.Context, path string, _ ...analyzer.Option) (*space.Node, error) {
	n := c.active.Add(1)
	defer c.active.Add(-1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if c.release != nil {
		select {
		case <-c.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.fail[path] {
		return nil, errors.New("boom")
	}
	name := path
	return space.New(space.NodeSpec{Name: &name, StartLine: 1, EndLine: 1, Kind: space.Unit}), nil
}

func TestRunKeepsInputOrder(t *testing.T) {
	stub := &countingAnalyzer{fail: map[string]bool{"b.py": true}}
	r := New(Config{Analyzer: stub, Workers: 2})

	paths := []string{"a.py", "b.py", "c.py", "d.py"}
	results, err := r.Run(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		if paths[i] == "b.py" {
			assert.Error(t, res.Err)
			assert.Nil(t, res.Root)
			continue
		}
		require.NoError(t, res.Err)
		name, _ := res.Root.Name()
		assert.Equal(t, paths[i], name)
	}

	stats := r.Stats()
	assert.Equal(t, 3, stats.FilesAnalyzed)
	assert.Equal(t, 1, stats.FilesFailed)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "b.py")
}

func TestRunBoundsConcurrency(t *testing.T) {
	release := make(chan struct{})
	stub := &countingAnalyzer{release: release}
	r := New(Config{Analyzer: stub, Workers: 3})

	paths := make([]string, 12)
	for i := range paths {
		paths[i] = filepath.Join("src", string(rune('a'+i))+".py")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := r.Run(context.Background(), paths)
		assert.NoError(t, err)
	}()
	close(release)
	<-done

	assert.LessOrEqual(t, stub.peak.Load(), int32(3))
	assert.Equal(t, 12, r.Stats().FilesAnalyzed)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(Config{Analyzer: &countingAnalyzer{release: make(chan struct{})}, Workers: 2})
	_, err := r.Run(ctx, []string{"a.py", "b.py"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunWithEngine(t *testing.T) {
	dir := t.TempDir()
	py := filepath.Join(dir, "main.py")
	rs := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(py, []byte("def main():\n    return 0\n"), 0o644))
	require.NoError(t, os.WriteFile(rs, []byte("fn add(a: i32, b: i32) -> i32 { a + b }\n"), 0o644))

	var logged atomic.Int32
	r := New(Config{Workers: 2, Verbose: true, Logger: func(string, ...any) { logged.Add(1) }})
	results, err := r.Run(context.Background(), []string{py, rs, filepath.Join(dir, "missing.py")})
	require.NoError(t, err)

	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Len(t, results[1].Root.Functions(), 1)
	assert.True(t, errors.Is(results[2].Err, analyzer.ErrIO))
	assert.Positive(t, logged.Load())
}
