// Package engine parses source files with tree-sitter and reports a tree of code
// regions with raw metric statistics for each one.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

var (
	// ErrNoProfile is returned for a language without a registered profile.
	ErrNoProfile = errors.New("no grammar registered for language")
	// ErrSyntax is returned in strict mode when the syntax tree contains errors.
	ErrSyntax = errors.New("syntax error")
)

// Config holds configuration for the Engine.
type Config struct {
	Registry *Registry // defaults to DefaultRegistry()
	Strict   bool      // treat syntax-error trees as failures
	Verbose  bool
	Logger   func(format string, args ...any) // optional logger, defaults to fmt.Fprintf(os.Stderr, ...)
}

// Engine builds region trees. It is safe for concurrent use; every call creates
// its own parser.
type Engine struct {
	registry *Registry
	strict   bool
	verbose  bool
	log      func(format string, args ...any)
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Engine{
		registry: reg,
		strict:   cfg.Strict,
		verbose:  cfg.Verbose,
		log:      logFn,
	}
}

// Registry returns the profiles the engine parses with.
func (e *Engine) Registry() *Registry { return e.registry }

// GuessLanguage infers the language of a source unit, limited to languages
// with a registered profile.
func (e *Engine) GuessLanguage(src []byte, path string) (lang.Language, bool) {
	l, ok := lang.Guess(src, path)
	if !ok {
		return "", false
	}
	if _, ok := e.registry.Get(l); !ok {
		return "", false
	}
	return l, true
}

// BuildRegionTree parses src as language l and returns the root region, a Unit
// named after path spanning the whole file.
func (e *Engine) BuildRegionTree(l lang.Language, src []byte, path string) (space.Region, error) {
	return e.BuildRegionTreeContext(context.Background(), l, src, path)
}

// BuildRegionTreeContext is BuildRegionTree with cancellation.
func (e *Engine) BuildRegionTreeContext(ctx context.Context, l lang.Language, src []byte, path string) (space.Region, error) {
	p, ok := e.registry.Get(l)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProfile, l)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.Grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: empty syntax tree", path)
	}
	if root.HasError() {
		line := firstErrorLine(root)
		if e.strict {
			return nil, fmt.Errorf("%w in %s at line %d", ErrSyntax, path, line)
		}
		if e.verbose {
			e.log("  %s: syntax errors from line %d, metrics are approximate", path, line)
		}
	}

	li := newLineIndex(src)
	unit := newRegion(space.Unit, 1, li.lines)
	unit.name, unit.hasName = path, true
	unit.public = true

	w := &walker{p: p, src: src, lines: li}
	w.visit(root, nil, unit, 0)

	li.freeze()
	finalize(unit, li)
	return unit, nil
}

// firstErrorLine returns the 1-based line of the first ERROR or missing node.
func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c != nil && c.HasError() {
			return firstErrorLine(c)
		}
	}
	return int(n.StartPoint().Row) + 1
}
