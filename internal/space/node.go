package space

import (
	"fmt"

	"github.com/imyousuf/CodeMetrics/internal/metrics"
)

// Region is one engine-reported code region, the input to Build.
type Region interface {
	Name() (string, bool)
	StartLine() int
	EndLine() int
	Kind() Kind
	Stats() metrics.Stats
	Children() []Region
}

// Node is an immutable code region with its metrics and nested regions.
type Node struct {
	name      string
	hasName   bool
	startLine int
	endLine   int
	kind      Kind
	metrics   metrics.CodeMetrics
	children  []*Node
}

// Name returns the region's name, if it has one.
func (n *Node) Name() (string, bool) { return n.name, n.hasName }

// StartLine is 1-based and inclusive.
func (n *Node) StartLine() int { return n.startLine }

// EndLine is 1-based, inclusive and never below StartLine.
func (n *Node) EndLine() int { return n.endLine }

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Metrics() metrics.CodeMetrics { return n.metrics }

// Children returns the directly nested regions in source order. The slice is a
// copy; the nodes themselves are shared and immutable.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// NumChildren avoids the copy made by Children.
func (n *Node) NumChildren() int { return len(n.children) }

func (n *Node) String() string {
	name := "<none>"
	if n.hasName {
		name = fmt.Sprintf("%q", n.name)
	}
	return fmt.Sprintf("Node(name=%s, kind=%s, lines=%d-%d, cc=%v)",
		name, n.kind, n.startLine, n.endLine, n.metrics.Cyclomatic.Sum)
}
