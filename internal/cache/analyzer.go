package cache

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/imyousuf/CodeMetrics/internal/analyzer"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

// SourceAnalyzer analyzes source already read into memory.
type SourceAnalyzer interface {
	AnalyzeContext(ctx context.Context, src []byte, path string, opts ...analyzer.Option) (*space.Node, error)
}

// Config holds configuration for the caching Analyzer.
type Config struct {
	Store    *Store
	Analyzer SourceAnalyzer
	// Variant must differ between runs whose settings change results, see
	// Variant.
	Variant string
	Verbose bool
	Logger  func(format string, args ...any) // optional logger, defaults to fmt.Fprintf(os.Stderr, ...)
}

// Analyzer answers file analyses from the store when the file content is
// unchanged and falls back to the wrapped analyzer otherwise.
type Analyzer struct {
	store   *Store
	inner   SourceAnalyzer
	variant string
	verbose bool
	log     func(format string, args ...any)

	hits   atomic.Int64
	misses atomic.Int64
}

// NewAnalyzer creates a caching Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Analyzer{
		store:   cfg.Store,
		inner:   cfg.Analyzer,
		variant: cfg.Variant,
		verbose: cfg.Verbose,
		log:     logFn,
	}
}

// Variant encodes the settings that affect a result.
func Variant(language string, strict bool) string {
	return fmt.Sprintf("lang=%s,strict=%t", language, strict)
}

// AnalyzeFileContext reads path and returns its tree, from the store when
// possible. Failures are never cached.
func (a *Analyzer) AnalyzeFileContext(ctx context.Context, path string, opts ...analyzer.Option) (*space.Node, error) {
	src, err := analyzer.ReadSource(path)
	if err != nil {
		return nil, err
	}

	key := Key{Path: path, Variant: a.variant, Digest: xxhash.Sum64(src)}
	root, ok, err := a.store.Get(key)
	if err != nil {
		a.log("cache: %v", err)
	}
	if ok {
		a.hits.Add(1)
		if a.verbose {
			a.log("  %s: cached", path)
		}
		return root, nil
	}

	a.misses.Add(1)
	root, err = a.inner.AnalyzeContext(ctx, src, path, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.store.Put(key, root); err != nil {
		a.log("cache: %v", err)
	}
	return root, nil
}

// Hits returns the number of analyses served from the store.
func (a *Analyzer) Hits() int64 { return a.hits.Load() }

// Misses returns the number of analyses that had to parse.
func (a *Analyzer) Misses() int64 { return a.misses.Load() }
