package space

import "github.com/imyousuf/CodeMetrics/internal/metrics"

// Snapshot is a plain, serializable copy of a node tree.
type Snapshot struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Kind      string              `json:"kind" yaml:"kind" toml:"kind"`
	StartLine int                 `json:"start_line" yaml:"start_line" toml:"start_line"`
	EndLine   int                 `json:"end_line" yaml:"end_line" toml:"end_line"`
	Metrics   metrics.CodeMetrics `json:"metrics" yaml:"metrics" toml:"metrics"`
	Spaces    []Snapshot          `json:"spaces,omitempty" yaml:"spaces,omitempty" toml:"spaces,omitempty"`
}

// Snapshot copies the subtree rooted at n.
func (n *Node) Snapshot() Snapshot {
	s := Snapshot{
		Name:      n.name,
		Kind:      n.kind.String(),
		StartLine: n.startLine,
		EndLine:   n.endLine,
		Metrics:   n.metrics,
	}
	for _, c := range n.children {
		s.Spaces = append(s.Spaces, c.Snapshot())
	}
	return s
}

// Node rebuilds a tree from a snapshot. An empty name is read back as absent and
// an unrecognized kind as Unknown.
func (s Snapshot) Node() *Node {
	spec := NodeSpec{
		StartLine: s.StartLine,
		EndLine:   s.EndLine,
		Metrics:   s.Metrics,
	}
	if s.Name != "" {
		name := s.Name
		spec.Name = &name
	}
	spec.Kind, _ = ParseKind(s.Kind)
	for _, c := range s.Spaces {
		spec.Children = append(spec.Children, c.Node())
	}
	return New(spec)
}
