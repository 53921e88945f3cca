package engine

import (
	"math"

	"github.com/imyousuf/CodeMetrics/internal/metrics"
)

// agg accumulates a sum together with the min and max of the values added.
type agg struct {
	sum, min, max float64
	n             int
}

func (a *agg) add(v float64) {
	if a.n == 0 || v < a.min {
		a.min = v
	}
	if a.n == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.n++
}

func (a *agg) merge(b agg) {
	if b.n == 0 {
		return
	}
	if a.n == 0 || b.min < a.min {
		a.min = b.min
	}
	if a.n == 0 || b.max > a.max {
		a.max = b.max
	}
	a.sum += b.sum
	a.n += b.n
}

func div(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// stats is the raw statistics of one region, merged over its subtree. It
// implements metrics.Stats and every facet interface.
type stats struct {
	spaces float64

	sloc, ploc, lloc, cloc, blank      float64
	slocR, plocR, llocR, clocR, blankR agg

	cyclomatic, cognitive agg

	operators, operands           map[string]int
	n1, bigN1, n2, bigN2          float64
	hVolume, hDifficulty, hEffort float64

	miOriginal, miSEI, miVisualStudio float64

	assignments, branches, conditions agg
	functions, closures               agg
	fnArgs, closureArgs               agg

	exitSum float64
	exitFn  agg

	classWmc, ifaceWmc float64
	classNpm, ifaceNpm float64
	classNpa, ifaceNpa float64
}

// finalize computes the statistics of r and all its descendants, post-order.
func finalize(r *region, li *lineIndex) {
	for _, c := range r.children {
		finalize(c, li)
	}

	s := &stats{
		spaces:    1,
		operators: make(map[string]int, len(r.operators)),
		operands:  make(map[string]int, len(r.operands)),
	}

	s.sloc = float64(r.end - r.start + 1)
	s.ploc = float64(li.count(li.codeSum, r.start, r.end))
	s.cloc = float64(li.count(li.commentSum, r.start, r.end))
	s.blank = s.sloc - float64(li.count(li.anySum, r.start, r.end))
	s.lloc = float64(r.statements)

	s.cyclomatic.add(float64(1 + r.decisions))
	s.cognitive.add(float64(r.cognitive))
	s.assignments.add(float64(r.assignments))
	s.branches.add(float64(r.branches))
	s.conditions.add(float64(r.conditions))
	s.exitSum = float64(r.exits)

	switch {
	case r.isFunction():
		s.functions.add(1)
		s.closures.add(0)
		s.fnArgs.add(float64(r.args))
		s.exitFn.add(float64(r.exits))
	case r.closure:
		s.functions.add(0)
		s.closures.add(1)
		s.closureArgs.add(float64(r.args))
		s.exitFn.add(float64(r.exits))
	default:
		s.functions.add(0)
		s.closures.add(0)
	}

	for k, v := range r.operators {
		s.operators[k] += v
	}
	for k, v := range r.operands {
		s.operands[k] += v
	}

	var ownWmc, ownNpm float64
	for _, c := range r.children {
		cs := c.stats
		s.spaces += cs.spaces
		s.lloc += cs.lloc
		s.slocR.merge(cs.slocR)
		s.plocR.merge(cs.plocR)
		s.llocR.merge(cs.llocR)
		s.clocR.merge(cs.clocR)
		s.blankR.merge(cs.blankR)
		s.cyclomatic.merge(cs.cyclomatic)
		s.cognitive.merge(cs.cognitive)
		s.assignments.merge(cs.assignments)
		s.branches.merge(cs.branches)
		s.conditions.merge(cs.conditions)
		s.functions.merge(cs.functions)
		s.closures.merge(cs.closures)
		s.fnArgs.merge(cs.fnArgs)
		s.closureArgs.merge(cs.closureArgs)
		s.exitSum += cs.exitSum
		s.exitFn.merge(cs.exitFn)
		s.classWmc += cs.classWmc
		s.ifaceWmc += cs.ifaceWmc
		s.classNpm += cs.classNpm
		s.ifaceNpm += cs.ifaceNpm
		s.classNpa += cs.classNpa
		s.ifaceNpa += cs.ifaceNpa
		for k, v := range cs.operators {
			s.operators[k] += v
		}
		for k, v := range cs.operands {
			s.operands[k] += v
		}

		if c.isFunction() {
			ownWmc += cs.cyclomatic.sum
			if c.public {
				ownNpm++
			}
		}
	}

	s.slocR.add(s.sloc)
	s.plocR.add(s.ploc)
	s.llocR.add(s.lloc)
	s.clocR.add(s.cloc)
	s.blankR.add(s.blank)

	ownNpm += float64(r.publicSignatures)
	switch {
	case r.isClassLike():
		s.classWmc += ownWmc
		s.classNpm += ownNpm
		s.classNpa += float64(r.publicFields)
	case r.isInterfaceLike():
		s.ifaceWmc += ownWmc
		s.ifaceNpm += ownNpm
		s.ifaceNpa += float64(r.publicFields)
	}

	s.computeHalstead()
	s.computeMI()
	r.stats = s
}

func (s *stats) computeHalstead() {
	s.n1 = float64(len(s.operators))
	s.n2 = float64(len(s.operands))
	for _, v := range s.operators {
		s.bigN1 += float64(v)
	}
	for _, v := range s.operands {
		s.bigN2 += float64(v)
	}
	if vocab := s.n1 + s.n2; vocab > 0 {
		s.hVolume = (s.bigN1 + s.bigN2) * math.Log2(vocab)
	}
	s.hDifficulty = div(s.n1, 2) * div(s.bigN2, s.n2)
	s.hEffort = s.hDifficulty * s.hVolume
}

// computeMI leaves the raw formulas unguarded: a region without operators has a
// zero volume and an infinite index, which conversion maps to 0.
func (s *stats) computeMI() {
	cc := s.cyclomatic.sum
	s.miOriginal = 171 - 5.2*math.Log(s.hVolume) - 0.23*cc - 16.2*math.Log(s.sloc)
	s.miSEI = 171 - 5.2*math.Log2(s.hVolume) - 0.23*cc - 16.2*math.Log2(s.sloc) +
		50*math.Sin(math.Sqrt(2.4*div(s.cloc, s.sloc)))
	s.miVisualStudio = math.Max(0, s.miOriginal*100/171)
}

func xlog2x(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return v * math.Log2(v)
}

func (s *stats) Loc() metrics.LocStats               { return s }
func (s *stats) Cyclomatic() metrics.CyclomaticStats { return s }
func (s *stats) Cognitive() metrics.CognitiveStats   { return s }
func (s *stats) Halstead() metrics.HalsteadStats     { return s }
func (s *stats) MI() metrics.MIStats                 { return s }
func (s *stats) Abc() metrics.AbcStats               { return s }
func (s *stats) Nom() metrics.NomStats               { return s }
func (s *stats) Nargs() metrics.NargsStats           { return s }
func (s *stats) Nexits() metrics.NexitsStats         { return s }
func (s *stats) Wmc() metrics.WmcStats               { return s }
func (s *stats) Npm() metrics.NpmStats               { return s }
func (s *stats) Npa() metrics.NpaStats               { return s }

func (s *stats) Sloc() float64         { return s.sloc }
func (s *stats) Ploc() float64         { return s.ploc }
func (s *stats) Lloc() float64         { return s.lloc }
func (s *stats) Cloc() float64         { return s.cloc }
func (s *stats) Blank() float64        { return s.blank }
func (s *stats) SlocAverage() float64  { return div(s.sloc, s.spaces) }
func (s *stats) PlocAverage() float64  { return div(s.ploc, s.spaces) }
func (s *stats) LlocAverage() float64  { return div(s.lloc, s.spaces) }
func (s *stats) ClocAverage() float64  { return div(s.cloc, s.spaces) }
func (s *stats) BlankAverage() float64 { return div(s.blank, s.spaces) }
func (s *stats) SlocMin() float64      { return s.slocR.min }
func (s *stats) SlocMax() float64      { return s.slocR.max }
func (s *stats) PlocMin() float64      { return s.plocR.min }
func (s *stats) PlocMax() float64      { return s.plocR.max }
func (s *stats) LlocMin() float64      { return s.llocR.min }
func (s *stats) LlocMax() float64      { return s.llocR.max }
func (s *stats) ClocMin() float64      { return s.clocR.min }
func (s *stats) ClocMax() float64      { return s.clocR.max }
func (s *stats) BlankMin() float64     { return s.blankR.min }
func (s *stats) BlankMax() float64     { return s.blankR.max }

func (s *stats) CyclomaticSum() float64     { return s.cyclomatic.sum }
func (s *stats) CyclomaticAverage() float64 { return div(s.cyclomatic.sum, s.spaces) }
func (s *stats) CyclomaticMin() float64     { return s.cyclomatic.min }
func (s *stats) CyclomaticMax() float64     { return s.cyclomatic.max }

func (s *stats) CognitiveSum() float64     { return s.cognitive.sum }
func (s *stats) CognitiveAverage() float64 { return div(s.cognitive.sum, s.spaces) }
func (s *stats) CognitiveMin() float64     { return s.cognitive.min }
func (s *stats) CognitiveMax() float64     { return s.cognitive.max }

func (s *stats) UOperators() float64 { return s.n1 }
func (s *stats) Operators() float64  { return s.bigN1 }
func (s *stats) UOperands() float64  { return s.n2 }
func (s *stats) Operands() float64   { return s.bigN2 }
func (s *stats) Length() float64     { return s.bigN1 + s.bigN2 }
func (s *stats) Vocabulary() float64 { return s.n1 + s.n2 }
func (s *stats) Volume() float64     { return s.hVolume }
func (s *stats) Difficulty() float64 { return s.hDifficulty }
func (s *stats) Effort() float64     { return s.hEffort }
func (s *stats) Time() float64       { return s.hEffort / 18 }
func (s *stats) Bugs() float64       { return math.Pow(s.hEffort, 2.0/3.0) / 3000 }

func (s *stats) EstimatedProgramLength() float64 {
	return xlog2x(s.n1) + xlog2x(s.n2)
}

func (s *stats) PurityRatio() float64 {
	return div(s.EstimatedProgramLength(), s.Length())
}

func (s *stats) Level() float64 { return div(1, s.hDifficulty) }

func (s *stats) MIOriginal() float64     { return s.miOriginal }
func (s *stats) MISEI() float64          { return s.miSEI }
func (s *stats) MIVisualStudio() float64 { return s.miVisualStudio }

func (s *stats) AssignmentsSum() float64 { return s.assignments.sum }
func (s *stats) BranchesSum() float64    { return s.branches.sum }
func (s *stats) ConditionsSum() float64  { return s.conditions.sum }
func (s *stats) MagnitudeSum() float64 {
	a, b, c := s.assignments.sum, s.branches.sum, s.conditions.sum
	return math.Sqrt(a*a + b*b + c*c)
}
func (s *stats) AssignmentsAverage() float64 { return div(s.assignments.sum, s.spaces) }
func (s *stats) BranchesAverage() float64    { return div(s.branches.sum, s.spaces) }
func (s *stats) ConditionsAverage() float64  { return div(s.conditions.sum, s.spaces) }
func (s *stats) AssignmentsMin() float64     { return s.assignments.min }
func (s *stats) AssignmentsMax() float64     { return s.assignments.max }
func (s *stats) BranchesMin() float64        { return s.branches.min }
func (s *stats) BranchesMax() float64        { return s.branches.max }
func (s *stats) ConditionsMin() float64      { return s.conditions.min }
func (s *stats) ConditionsMax() float64      { return s.conditions.max }

func (s *stats) FunctionsSum() float64     { return s.functions.sum }
func (s *stats) ClosuresSum() float64      { return s.closures.sum }
func (s *stats) Total() float64            { return s.functions.sum + s.closures.sum }
func (s *stats) FunctionsAverage() float64 { return div(s.functions.sum, s.spaces) }
func (s *stats) ClosuresAverage() float64  { return div(s.closures.sum, s.spaces) }
func (s *stats) Average() float64          { return div(s.Total(), s.spaces) }
func (s *stats) FunctionsMin() float64     { return s.functions.min }
func (s *stats) FunctionsMax() float64     { return s.functions.max }
func (s *stats) ClosuresMin() float64      { return s.closures.min }
func (s *stats) ClosuresMax() float64      { return s.closures.max }

func (s *stats) FnArgsSum() float64          { return s.fnArgs.sum }
func (s *stats) ClosureArgsSum() float64     { return s.closureArgs.sum }
func (s *stats) FnArgsAverage() float64      { return div(s.fnArgs.sum, float64(s.fnArgs.n)) }
func (s *stats) ClosureArgsAverage() float64 { return div(s.closureArgs.sum, float64(s.closureArgs.n)) }
func (s *stats) NargsTotal() float64         { return s.fnArgs.sum + s.closureArgs.sum }
func (s *stats) NargsAverage() float64 {
	return div(s.NargsTotal(), float64(s.fnArgs.n+s.closureArgs.n))
}
func (s *stats) FnArgsMin() float64      { return s.fnArgs.min }
func (s *stats) FnArgsMax() float64      { return s.fnArgs.max }
func (s *stats) ClosureArgsMin() float64 { return s.closureArgs.min }
func (s *stats) ClosureArgsMax() float64 { return s.closureArgs.max }

func (s *stats) ExitSum() float64     { return s.exitSum }
func (s *stats) ExitAverage() float64 { return div(s.exitSum, float64(s.exitFn.n)) }
func (s *stats) ExitMin() float64     { return s.exitFn.min }
func (s *stats) ExitMax() float64     { return s.exitFn.max }

func (s *stats) ClassWmcSum() float64     { return s.classWmc }
func (s *stats) InterfaceWmcSum() float64 { return s.ifaceWmc }
func (s *stats) TotalWmc() float64        { return s.classWmc + s.ifaceWmc }
func (s *stats) ClassNpmSum() float64     { return s.classNpm }
func (s *stats) InterfaceNpmSum() float64 { return s.ifaceNpm }
func (s *stats) TotalNpm() float64        { return s.classNpm + s.ifaceNpm }
func (s *stats) ClassNpaSum() float64     { return s.classNpa }
func (s *stats) InterfaceNpaSum() float64 { return s.ifaceNpa }
func (s *stats) TotalNpa() float64        { return s.classNpa + s.ifaceNpa }
