package engine

import (
	"github.com/imyousuf/CodeMetrics/internal/metrics"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

// region is one code region discovered by the walker. Counters hold what was
// found in the region's own scope; nested regions keep their own.
type region struct {
	name     string
	hasName  bool
	kind     space.Kind
	closure  bool
	start    int
	end      int
	public   bool
	children []*region

	// allMembersPublic is set on trait implementations and similar owners.
	allMembersPublic bool

	decisions   int
	cognitive   int
	exits       int
	args        int
	assignments int
	branches    int
	conditions  int
	statements  int
	operators   map[string]int
	operands    map[string]int

	publicFields     int
	publicSignatures int

	stats *stats
}

func newRegion(kind space.Kind, start, end int) *region {
	if end < start {
		end = start
	}
	return &region{
		kind:      kind,
		start:     start,
		end:       end,
		operators: make(map[string]int),
		operands:  make(map[string]int),
	}
}

func (r *region) isFunction() bool { return r.kind == space.Function && !r.closure }

func (r *region) isClassLike() bool {
	return r.kind == space.Class || r.kind == space.Struct || r.kind == space.Impl
}

func (r *region) isInterfaceLike() bool {
	return r.kind == space.Interface || r.kind == space.Trait
}

func (r *region) Name() (string, bool) { return r.name, r.hasName }
func (r *region) StartLine() int       { return r.start }
func (r *region) EndLine() int         { return r.end }
func (r *region) Kind() space.Kind     { return r.kind }

func (r *region) Stats() metrics.Stats {
	if r.stats == nil {
		return nil
	}
	return r.stats
}

func (r *region) Children() []space.Region {
	out := make([]space.Region, len(r.children))
	for i, c := range r.children {
		out[i] = c
	}
	return out
}
