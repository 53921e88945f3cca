// Package analyzer turns one source unit into a finished space tree: it
// resolves the language, asks the engine for the region tree and builds the
// immutable metrics tree from it.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/imyousuf/CodeMetrics/internal/engine"
	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

// Engine is the parsing and measurement collaborator.
type Engine interface {
	GuessLanguage(src []byte, path string) (lang.Language, bool)
	BuildRegionTree(l lang.Language, src []byte, path string) (space.Region, error)
}

// contextEngine is implemented by engines that honor cancellation.
type contextEngine interface {
	BuildRegionTreeContext(ctx context.Context, l lang.Language, src []byte, path string) (space.Region, error)
}

// Config holds configuration for the Analyzer.
type Config struct {
	Engine  Engine // defaults to the tree-sitter engine
	Verbose bool
	Logger  func(format string, args ...any) // optional logger, defaults to fmt.Fprintf(os.Stderr, ...)
}

// Analyzer runs analyses. It holds no per-call state and is safe for
// concurrent use.
type Analyzer struct {
	engine  Engine
	verbose bool
	log     func(format string, args ...any)
}

// New creates an Analyzer with the given configuration.
func New(cfg Config) *Analyzer {
	eng := cfg.Engine
	if eng == nil {
		eng = engine.New(engine.Config{Verbose: cfg.Verbose, Logger: cfg.Logger})
	}
	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Analyzer{
		engine:  eng,
		verbose: cfg.Verbose,
		log:     logFn,
	}
}

// Option adjusts a single analysis.
type Option func(*options)

type options struct {
	language *string
}

// WithLanguage forces the language instead of inferring it. The name must be
// one of lang.SupportedLanguages, matched case-sensitively.
func WithLanguage(name string) Option {
	return func(o *options) { o.language = &name }
}

// Analyze computes the space tree of source. The path names the unit and
// drives language inference when no language is given.
func (a *Analyzer) Analyze(source, path string, opts ...Option) (*space.Node, error) {
	return a.AnalyzeContext(context.Background(), []byte(source), path, opts...)
}

// AnalyzeFile reads path and analyzes its content.
func (a *Analyzer) AnalyzeFile(path string, opts ...Option) (*space.Node, error) {
	return a.AnalyzeFileContext(context.Background(), path, opts...)
}

// AnalyzeFileContext is AnalyzeFile with cancellation.
func (a *Analyzer) AnalyzeFileContext(ctx context.Context, path string, opts ...Option) (*space.Node, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeContext(ctx, src, path, opts...)
}

// ReadSource reads a source file, failing with an *IOError when it cannot be
// read or is not valid UTF-8.
func ReadSource(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(src) {
		return nil, &IOError{Path: path, Err: errNotUTF8}
	}
	return src, nil
}

// AnalyzeContext analyzes src with cancellation.
func (a *Analyzer) AnalyzeContext(ctx context.Context, src []byte, path string, opts ...Option) (*space.Node, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l, err := lang.Resolve(o.language, path, src, a.engine.GuessLanguage)
	if err != nil {
		return nil, err
	}

	var region space.Region
	if ce, ok := a.engine.(contextEngine); ok {
		region, err = ce.BuildRegionTreeContext(ctx, l, src, path)
	} else {
		region, err = a.engine.BuildRegionTree(l, src, path)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Language: l, Err: err}
	}
	if region == nil {
		return nil, &ParseError{Path: path, Language: l, Err: fmt.Errorf("engine returned no region tree")}
	}

	root := space.Build(region)
	if a.verbose {
		a.log("  %s: %s, %d spaces", path, l, space.Count(root))
	}
	return root, nil
}

var defaultAnalyzer = New(Config{})

// Analyze runs the default analyzer.
func Analyze(source, path string, opts ...Option) (*space.Node, error) {
	return defaultAnalyzer.Analyze(source, path, opts...)
}

// AnalyzeFile runs the default analyzer on a file.
func AnalyzeFile(path string, opts ...Option) (*space.Node, error) {
	return defaultAnalyzer.AnalyzeFile(path, opts...)
}
