package engine

import (
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

type set map[string]bool

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}

// tokenRule matches anonymous tokens, optionally only under given parent types.
// A nil parent set matches any parent.
type tokenRule map[string]set

func (r tokenRule) match(token, parent string) bool {
	parents, ok := r[token]
	if !ok {
		return false
	}
	return parents == nil || parents[parent]
}

// Profile describes how one grammar maps onto regions and metric counters.
type Profile struct {
	Language lang.Language
	grammar  func() *sitter.Language

	// Spaces maps node types that open a region to the region kind.
	Spaces map[string]space.Kind
	// Closures are function-like spaces counted as closures rather than functions.
	Closures set
	// RequireBody lists space types that only open a region when they have a body.
	RequireBody set

	Comments set
	// DocStrings treats an expression statement made of a lone string as a comment.
	DocStrings bool

	// Decisions and DecisionTokens add one to the cyclomatic complexity.
	Decisions      set
	DecisionTokens tokenRule
	// BoolOps are short-circuit operators; each occurrence is a decision and each
	// run of the same operator adds one to cognitive complexity.
	BoolOps     set
	BoolParents set

	// Nesting types add 1 plus the nesting level to cognitive complexity and
	// increase the nesting for their children.
	Nesting set
	// Flat types add 1 to cognitive complexity regardless of nesting.
	Flat set
	// Ifs and ElseClauses locate "else" and "else if" for cognitive complexity.
	Ifs         set
	ElseClauses set
	// Wrappers are single-child containers looked through when matching else-if.
	Wrappers set

	Exits      set
	ExitTokens tokenRule

	Assignments set
	// Initializers count as assignments only when they carry a value.
	Initializers    set
	Calls           set
	ConditionTokens tokenRule

	Statements set
	// StatementLists count each named child as a logical line.
	StatementLists set
	NotStatements  set

	Operands     set
	IgnoreTokens set

	ParamLists set
	ParamSkip  set

	Fields           set
	MethodSignatures set

	// Optional per-language hooks.
	refineKind  func(n *sitter.Node, k space.Kind) (space.Kind, bool)
	nameOf      func(n *sitter.Node, src []byte) (string, bool)
	countParam  func(n *sitter.Node) bool
	fieldCount  func(n *sitter.Node) int
	isSignature func(n *sitter.Node) bool
	isPublic    func(n *sitter.Node, owner *region, src []byte) bool
	allPublic   func(n *sitter.Node) bool
}

// Grammar returns the tree-sitter grammar for the profile.
func (p *Profile) Grammar() *sitter.Language { return p.grammar() }

// Extensions returns the dotted file extensions of the profile's language.
func (p *Profile) Extensions() []string { return lang.FileExtensions[p.Language] }

func (p *Profile) spaceKind(n *sitter.Node) (space.Kind, bool) {
	k, ok := p.Spaces[n.Type()]
	if !ok {
		return space.Unknown, false
	}
	if p.RequireBody[n.Type()] && n.ChildByFieldName("body") == nil {
		return space.Unknown, false
	}
	if p.refineKind != nil {
		return p.refineKind(n, k)
	}
	return k, true
}

func (p *Profile) isStatement(t string) bool {
	if p.NotStatements[t] {
		return false
	}
	return p.Statements[t] || strings.HasSuffix(t, "_statement")
}

// Registry holds the profile of every supported language.
type Registry struct {
	mu       sync.RWMutex
	profiles map[lang.Language]*Profile
	extIndex map[string]*Profile
	order    []lang.Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[lang.Language]*Profile),
		extIndex: make(map[string]*Profile),
	}
}

// DefaultRegistry returns a registry with a profile for every supported language.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []*Profile{
		pythonProfile(),
		rustProfile(),
		javaProfile(),
		javascriptProfile(),
		typescriptProfile(),
		tsxProfile(),
		kotlinProfile(),
		cppProfile(),
		cProfile(),
	} {
		r.Register(p)
	}
	return r
}

// Register adds a profile, indexing it by language and file extensions.
func (r *Registry) Register(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[p.Language]; !exists {
		r.order = append(r.order, p.Language)
	}
	r.profiles[p.Language] = p
	for _, ext := range p.Extensions() {
		r.extIndex[ext] = p
	}
}

// Get retrieves a profile by language.
func (r *Registry) Get(l lang.Language) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[l]
	return p, ok
}

// GetByExtension retrieves a profile by dotted file extension.
func (r *Registry) GetByExtension(ext string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.extIndex[ext]
	return p, ok
}

// All returns the profiles in registration order.
func (r *Registry) All() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Profile, len(r.order))
	for i, l := range r.order {
		out[i] = r.profiles[l]
	}
	return out
}

// SupportedExtensions returns every registered extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.extIndex))
	for ext := range r.extIndex {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
