package engine

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/imyousuf/CodeMetrics/internal/space"
)

// lineIndex records which lines carry code and which carry comments.
type lineIndex struct {
	lines   int
	code    []bool
	comment []bool

	codeSum    []int
	commentSum []int
	anySum     []int
}

func newLineIndex(src []byte) *lineIndex {
	lines := 0
	for _, b := range src {
		if b == '\n' {
			lines++
		}
	}
	if len(src) > 0 && src[len(src)-1] != '\n' {
		lines++
	}
	if lines == 0 {
		lines = 1
	}
	return &lineIndex{
		lines:   lines,
		code:    make([]bool, lines+1),
		comment: make([]bool, lines+1),
	}
}

func (li *lineIndex) mark(rows []bool, first, last int) {
	if first < 1 {
		first = 1
	}
	if last > li.lines {
		last = li.lines
	}
	for i := first; i <= last; i++ {
		rows[i] = true
	}
}

func (li *lineIndex) freeze() {
	li.codeSum = make([]int, li.lines+1)
	li.commentSum = make([]int, li.lines+1)
	li.anySum = make([]int, li.lines+1)
	for i := 1; i <= li.lines; i++ {
		li.codeSum[i] = li.codeSum[i-1]
		li.commentSum[i] = li.commentSum[i-1]
		li.anySum[i] = li.anySum[i-1]
		if li.code[i] {
			li.codeSum[i]++
		}
		if li.comment[i] {
			li.commentSum[i]++
		}
		if li.code[i] || li.comment[i] {
			li.anySum[i]++
		}
	}
}

func (li *lineIndex) count(prefix []int, first, last int) int {
	if first < 1 {
		first = 1
	}
	if last > li.lines {
		last = li.lines
	}
	if last < first {
		return 0
	}
	return prefix[last] - prefix[first-1]
}

// walker makes a single pass over a syntax tree, opening regions and counting
// into the innermost one.
type walker struct {
	p     *Profile
	src   []byte
	lines *lineIndex
}

func (w *walker) visit(n, parent *sitter.Node, cur *region, nesting int) {
	p := w.p
	t := n.Type()
	named := n.IsNamed()

	if named && p.Comments[t] {
		w.lines.mark(w.lines.comment, first(n), last(n))
		return
	}
	if named && p.DocStrings && t == "expression_statement" && isDocString(n) {
		w.lines.mark(w.lines.comment, first(n), last(n))
		return
	}

	if named {
		if k, ok := p.spaceKind(n); ok {
			r := w.openRegion(n, cur, k)
			cur.children = append(cur.children, r)
			if r.closure {
				nesting++
			} else {
				nesting = 0
			}
			cur = r
		}
	}

	childNesting := nesting
	if named && w.count(n, parent, cur, nesting) {
		childNesting++
	}

	if n.ChildCount() == 0 {
		w.leaf(n, parent, cur)
		return
	}
	if named && p.Operands[t] {
		w.lines.mark(w.lines.code, first(n), last(n))
		cur.operands[n.Content(w.src)]++
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil {
			w.visit(c, n, cur, childNesting)
		}
	}
}

func first(n *sitter.Node) int {
	f, _ := lineSpan(n)
	return f
}

func last(n *sitter.Node) int {
	_, l := lineSpan(n)
	return l
}

func isDocString(n *sitter.Node) bool {
	if n.NamedChildCount() != 1 {
		return false
	}
	t := n.NamedChild(0).Type()
	return t == "string" || t == "concatenated_string"
}

func (w *walker) openRegion(n *sitter.Node, owner *region, k space.Kind) *region {
	p := w.p
	start, end := lineSpan(n)
	r := newRegion(k, start, end)
	r.closure = p.Closures[n.Type()]

	switch {
	case r.closure:
		if name := n.ChildByFieldName("name"); name != nil {
			r.name, r.hasName = name.Content(w.src), true
		}
	case p.nameOf != nil:
		r.name, r.hasName = p.nameOf(n, w.src)
	default:
		r.name, r.hasName = defaultName(n, w.src)
	}

	if k == space.Function {
		r.args = p.countArgs(n, w.src)
	}
	r.public = w.public(n, owner)
	if p.allPublic != nil {
		r.allMembersPublic = p.allPublic(n)
	}
	return r
}

func (w *walker) public(n *sitter.Node, owner *region) bool {
	if owner.isInterfaceLike() || owner.allMembersPublic {
		return true
	}
	if w.p.isPublic == nil {
		return true
	}
	return w.p.isPublic(n, owner, w.src)
}

// count applies the node-level rules for a named node and reports whether its
// children are one nesting level deeper.
func (w *walker) count(n, parent *sitter.Node, cur *region, nesting int) bool {
	p := w.p
	t := n.Type()
	nests := false

	if p.Decisions[t] {
		cur.decisions++
	}
	switch {
	case p.Nesting[t] && w.isElseIf(n):
		cur.cognitive++
	case p.Nesting[t]:
		cur.cognitive += 1 + nesting
		nests = true
	case p.Flat[t]:
		cur.cognitive++
	}
	if p.BoolParents[t] {
		if op := boolOp(n, p.BoolOps); op != "" {
			if parent == nil || !p.BoolParents[parent.Type()] || boolOp(parent, p.BoolOps) != op {
				cur.cognitive++
			}
		}
	}

	if p.Exits[t] {
		cur.exits++
	}
	if p.Assignments[t] {
		cur.assignments++
	}
	if p.Initializers[t] && (n.ChildByFieldName("value") != nil || hasToken(n, "=")) {
		cur.assignments++
	}
	if p.Calls[t] {
		cur.branches++
	}
	if p.isStatement(t) || (parent != nil && p.StatementLists[parent.Type()]) {
		cur.statements++
	}

	if cur.isClassLike() || cur.isInterfaceLike() {
		if p.Fields[t] {
			c := 1
			if p.fieldCount != nil {
				c = p.fieldCount(n)
			}
			if c > 0 && w.public(n, cur) {
				cur.publicFields += c
			}
		}
		if p.MethodSignatures[t] && (p.isSignature == nil || p.isSignature(n)) && w.public(n, cur) {
			cur.publicSignatures++
		}
	}
	return nests
}

func (w *walker) leaf(n, parent *sitter.Node, cur *region) {
	if n.StartByte() == n.EndByte() {
		return
	}
	w.lines.mark(w.lines.code, first(n), last(n))

	p := w.p
	t := n.Type()
	if n.IsNamed() {
		if p.Operands[t] {
			cur.operands[n.Content(w.src)]++
		}
		return
	}

	pt := ""
	if parent != nil {
		pt = parent.Type()
	}
	if !p.IgnoreTokens[t] {
		cur.operators[t]++
	}
	if p.DecisionTokens.match(t, pt) {
		cur.decisions++
	}
	if p.BoolOps[t] && p.BoolParents[pt] {
		cur.decisions++
	}
	if p.ExitTokens.match(t, pt) {
		cur.exits++
	}
	if p.ConditionTokens.match(t, pt) {
		cur.conditions++
	}
	if t == "else" && (p.Ifs[pt] || p.ElseClauses[pt]) && !w.elseFollowedByIf(n) {
		cur.cognitive++
	}
}

// isElseIf reports whether an if node directly follows an "else" token.
func (w *walker) isElseIf(n *sitter.Node) bool {
	if !w.p.Ifs[n.Type()] {
		return false
	}
	anchor := n
	if par := n.Parent(); par != nil && w.p.Wrappers[par.Type()] && par.NamedChildCount() == 1 {
		anchor = par
	}
	prev := anchor.PrevSibling()
	return prev != nil && !prev.IsNamed() && prev.Type() == "else"
}

func (w *walker) elseFollowedByIf(tok *sitter.Node) bool {
	next := tok.NextNamedSibling()
	for next != nil && w.p.Comments[next.Type()] {
		next = next.NextNamedSibling()
	}
	if next != nil && w.p.Wrappers[next.Type()] && next.NamedChildCount() == 1 {
		next = next.NamedChild(0)
	}
	return next != nil && w.p.Ifs[next.Type()]
}
