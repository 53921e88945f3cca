package space

import "github.com/imyousuf/CodeMetrics/internal/metrics"

// Build converts an engine region tree into an immutable Node tree. Children keep
// the engine's order. An end line below the start line is raised to the start
// line, and nil children are skipped. Build returns nil for a nil region.
func Build(r Region) *Node {
	if r == nil {
		return nil
	}

	n := &Node{
		startLine: r.StartLine(),
		endLine:   r.EndLine(),
		kind:      r.Kind(),
		metrics:   metrics.Aggregate(r.Stats()),
	}
	n.name, n.hasName = r.Name()
	if n.endLine < n.startLine {
		n.endLine = n.startLine
	}

	kids := r.Children()
	if len(kids) > 0 {
		n.children = make([]*Node, 0, len(kids))
	}
	for _, c := range kids {
		if child := Build(c); child != nil {
			n.children = append(n.children, child)
		}
	}
	return n
}

// NodeSpec describes a node for New. It is mostly useful in tests and for
// rebuilding trees from reports.
type NodeSpec struct {
	Name      *string
	StartLine int
	EndLine   int
	Kind      Kind
	Metrics   metrics.CodeMetrics
	Children  []*Node
}

// New assembles a node directly from already converted metrics, applying the
// same normalization as Build.
func New(spec NodeSpec) *Node {
	n := &Node{
		startLine: spec.StartLine,
		endLine:   spec.EndLine,
		kind:      spec.Kind,
		metrics:   spec.Metrics,
	}
	if spec.Name != nil {
		n.name, n.hasName = *spec.Name, true
	}
	if n.endLine < n.startLine {
		n.endLine = n.startLine
	}
	for _, c := range spec.Children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}
