package engine

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// lineSpan returns the 1-based inclusive lines covered by n. A node ending at
// column 0 of a later row does not cover that row.
func lineSpan(n *sitter.Node) (int, int) {
	start, end := n.StartPoint(), n.EndPoint()
	first, last := int(start.Row)+1, int(end.Row)+1
	if end.Column == 0 && end.Row > start.Row {
		last--
	}
	return first, last
}

func childOfType(n *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		for _, t := range types {
			if c.Type() == t {
				return c
			}
		}
	}
	return nil
}

func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c != nil && !c.IsNamed() && c.Type() == token {
			return true
		}
	}
	return false
}

// boolOp returns the short-circuit operator of a binary node, if any.
func boolOp(n *sitter.Node, ops set) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c != nil && !c.IsNamed() && ops[c.Type()] {
			return c.Type()
		}
	}
	return ""
}

var nameTypes = []string{
	"identifier",
	"simple_identifier",
	"type_identifier",
	"field_identifier",
	"property_identifier",
	"private_property_identifier",
	"qualified_identifier",
	"destructor_name",
	"operator_name",
	"namespace_identifier",
}

// defaultName reads a region name from the "name" field, falling back to the
// C declarator chain and then to the first identifier-like child.
func defaultName(n *sitter.Node, src []byte) (string, bool) {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(src), true
	}
	if d := n.ChildByFieldName("declarator"); d != nil {
		if name, ok := declaratorName(d, src); ok {
			return name, true
		}
	}
	if c := childOfType(n, nameTypes...); c != nil {
		return c.Content(src), true
	}
	return "", false
}

// declaratorName unwraps pointer, reference and function declarators down to
// the declared identifier.
func declaratorName(d *sitter.Node, src []byte) (string, bool) {
	for depth := 0; d != nil && depth < 8; depth++ {
		for _, t := range nameTypes {
			if d.Type() == t {
				return d.Content(src), true
			}
		}
		next := d.ChildByFieldName("declarator")
		if next == nil && d.NamedChildCount() > 0 {
			next = d.NamedChild(0)
		}
		d = next
	}
	return "", false
}

// paramsNode finds the parameter list of a function-like node.
func (p *Profile) paramsNode(n *sitter.Node) *sitter.Node {
	if ps := n.ChildByFieldName("parameters"); ps != nil {
		return ps
	}
	if ps := n.ChildByFieldName("parameter"); ps != nil {
		return ps
	}
	for d, depth := n.ChildByFieldName("declarator"), 0; d != nil && depth < 8; depth++ {
		if ps := d.ChildByFieldName("parameters"); ps != nil {
			return ps
		}
		d = d.ChildByFieldName("declarator")
	}
	for t := range p.ParamLists {
		if c := childOfType(n, t); c != nil {
			return c
		}
	}
	return nil
}

func (p *Profile) countArgs(n *sitter.Node, src []byte) int {
	ps := p.paramsNode(n)
	if ps == nil {
		return 0
	}
	t := ps.Type()
	if !p.ParamLists[t] && !strings.HasSuffix(t, "parameters") && !strings.HasSuffix(t, "parameter_list") {
		// A lone parameter without a list, as in `x => x + 1`.
		return 1
	}

	count := 0
	for i := 0; i < int(ps.NamedChildCount()); i++ {
		c := ps.NamedChild(i)
		if c == nil || p.Comments[c.Type()] || p.ParamSkip[c.Type()] {
			continue
		}
		if p.countParam != nil && !p.countParam(c) {
			continue
		}
		count++
	}
	// C's `f(void)` declares no parameters.
	if count == 1 && ps.NamedChildCount() == 1 && strings.TrimSpace(ps.NamedChild(0).Content(src)) == "void" {
		return 0
	}
	return count
}
