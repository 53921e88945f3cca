// Package batch analyzes many files concurrently with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/imyousuf/CodeMetrics/internal/analyzer"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

// FileAnalyzer analyzes one file.
type FileAnalyzer interface {
	AnalyzeFileContext(ctx context.Context, path string, opts ...analyzer.Option) (*space.Node, error)
}

// Config holds configuration for the Runner.
type Config struct {
	Analyzer FileAnalyzer      // defaults to analyzer.New with Verbose and Logger
	Workers  int               // concurrent analyses, defaults to GOMAXPROCS
	Options  []analyzer.Option // applied to every file
	Verbose  bool
	Logger   func(format string, args ...any) // optional logger, defaults to fmt.Fprintf(os.Stderr, ...)
}

// Result is the outcome for one file. Exactly one of Root and Err is set.
type Result struct {
	Path string
	Root *space.Node
	Err  error
}

// Stats summarizes a run.
type Stats struct {
	FilesAnalyzed int           `json:"files_analyzed"`
	FilesFailed   int           `json:"files_failed"`
	Elapsed       time.Duration `json:"elapsed"`
	Errors        []string      `json:"errors,omitempty"`
}

// Runner analyzes independent files in parallel.
type Runner struct {
	analyzer FileAnalyzer
	workers  int
	opts     []analyzer.Option
	verbose  bool
	log      func(format string, args ...any)

	mu    sync.Mutex
	stats Stats
}

// New creates a Runner with the given configuration.
func New(cfg Config) *Runner {
	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	a := cfg.Analyzer
	if a == nil {
		a = analyzer.New(analyzer.Config{Verbose: cfg.Verbose, Logger: logFn})
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{
		analyzer: a,
		workers:  workers,
		opts:     cfg.Options,
		verbose:  cfg.Verbose,
		log:      logFn,
	}
}

// Run analyzes every path and returns the results in input order. A failing
// file does not stop the others; only cancellation of ctx aborts the run.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			root, err := r.analyzer.AnalyzeFileContext(gctx, path, r.opts...)
			results[i] = Result{Path: path, Root: root, Err: err}
			r.record(path, err)
			return nil
		})
	}

	err := g.Wait()

	r.mu.Lock()
	r.stats.Elapsed += time.Since(start)
	done := r.stats.FilesAnalyzed + r.stats.FilesFailed
	r.mu.Unlock()

	if r.verbose {
		r.log("Analyzed %d files in %s", done, time.Since(start))
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return results, fmt.Errorf("batch analysis: %w", err)
	}
	return results, nil
}

func (r *Runner) record(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.stats.FilesFailed++
		r.stats.Errors = append(r.stats.Errors, fmt.Sprintf("%s: %v", path, err))
		if r.verbose {
			r.log("  Failed: %s: %v", path, err)
		}
		return
	}
	r.stats.FilesAnalyzed++
	if r.verbose && r.stats.FilesAnalyzed%100 == 0 {
		r.log("  Progress: %d files analyzed...", r.stats.FilesAnalyzed)
	}
}

// Stats returns a copy of the accumulated statistics.
func (r *Runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats
	s.Errors = append([]string(nil), r.stats.Errors...)
	return s
}
