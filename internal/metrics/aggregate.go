package metrics

// Aggregate runs all twelve converters against the facets of s. A nil s, or a
// nil facet, converts as if every statistic were zero, so the record always has
// the same shape.
func Aggregate(s Stats) CodeMetrics {
	if s == nil {
		s = Empty
	}
	return CodeMetrics{
		Cyclomatic: ConvertCyclomatic(orEmpty[CyclomaticStats](s.Cyclomatic())),
		Cognitive:  ConvertCognitive(orEmpty[CognitiveStats](s.Cognitive())),
		Halstead:   ConvertHalstead(orEmpty[HalsteadStats](s.Halstead())),
		Loc:        ConvertLoc(orEmpty[LocStats](s.Loc())),
		MI:         ConvertMI(orEmpty[MIStats](s.MI())),
		Abc:        ConvertAbc(orEmpty[AbcStats](s.Abc())),
		Nom:        ConvertNom(orEmpty[NomStats](s.Nom())),
		Nargs:      ConvertNargs(orEmpty[NargsStats](s.Nargs())),
		Nexits:     ConvertNexits(orEmpty[NexitsStats](s.Nexits())),
		Wmc:        ConvertWmc(orEmpty[WmcStats](s.Wmc())),
		Npm:        ConvertNpm(orEmpty[NpmStats](s.Npm())),
		Npa:        ConvertNpa(orEmpty[NpaStats](s.Npa())),
	}
}

func orEmpty[T comparable](facet T) T {
	var zero T
	if facet == zero {
		return any(zeroFacet{}).(T)
	}
	return facet
}

// Empty is a Stats whose every facet reports zero.
var Empty Stats = emptyStats{}

type emptyStats struct{}

func (emptyStats) Loc() LocStats               { return zeroFacet{} }
func (emptyStats) Cyclomatic() CyclomaticStats { return zeroFacet{} }
func (emptyStats) Cognitive() CognitiveStats   { return zeroFacet{} }
func (emptyStats) Halstead() HalsteadStats     { return zeroFacet{} }
func (emptyStats) MI() MIStats                 { return zeroFacet{} }
func (emptyStats) Abc() AbcStats               { return zeroFacet{} }
func (emptyStats) Nom() NomStats               { return zeroFacet{} }
func (emptyStats) Nargs() NargsStats           { return zeroFacet{} }
func (emptyStats) Nexits() NexitsStats         { return zeroFacet{} }
func (emptyStats) Wmc() WmcStats               { return zeroFacet{} }
func (emptyStats) Npm() NpmStats               { return zeroFacet{} }
func (emptyStats) Npa() NpaStats               { return zeroFacet{} }

// zeroFacet implements every facet interface with zero values.
type zeroFacet struct{}

func (zeroFacet) Sloc() float64         { return 0 }
func (zeroFacet) Ploc() float64         { return 0 }
func (zeroFacet) Lloc() float64         { return 0 }
func (zeroFacet) Cloc() float64         { return 0 }
func (zeroFacet) Blank() float64        { return 0 }
func (zeroFacet) SlocAverage() float64  { return 0 }
func (zeroFacet) PlocAverage() float64  { return 0 }
func (zeroFacet) LlocAverage() float64  { return 0 }
func (zeroFacet) ClocAverage() float64  { return 0 }
func (zeroFacet) BlankAverage() float64 { return 0 }
func (zeroFacet) SlocMin() float64      { return 0 }
func (zeroFacet) SlocMax() float64      { return 0 }
func (zeroFacet) PlocMin() float64      { return 0 }
func (zeroFacet) PlocMax() float64      { return 0 }
func (zeroFacet) LlocMin() float64      { return 0 }
func (zeroFacet) LlocMax() float64      { return 0 }
func (zeroFacet) ClocMin() float64      { return 0 }
func (zeroFacet) ClocMax() float64      { return 0 }
func (zeroFacet) BlankMin() float64     { return 0 }
func (zeroFacet) BlankMax() float64     { return 0 }

func (zeroFacet) CyclomaticSum() float64     { return 0 }
func (zeroFacet) CyclomaticAverage() float64 { return 0 }
func (zeroFacet) CyclomaticMin() float64     { return 0 }
func (zeroFacet) CyclomaticMax() float64     { return 0 }
func (zeroFacet) CognitiveSum() float64      { return 0 }
func (zeroFacet) CognitiveAverage() float64  { return 0 }
func (zeroFacet) CognitiveMin() float64      { return 0 }
func (zeroFacet) CognitiveMax() float64      { return 0 }

func (zeroFacet) UOperators() float64             { return 0 }
func (zeroFacet) Operators() float64              { return 0 }
func (zeroFacet) UOperands() float64              { return 0 }
func (zeroFacet) Operands() float64               { return 0 }
func (zeroFacet) Length() float64                 { return 0 }
func (zeroFacet) EstimatedProgramLength() float64 { return 0 }
func (zeroFacet) PurityRatio() float64            { return 0 }
func (zeroFacet) Vocabulary() float64             { return 0 }
func (zeroFacet) Volume() float64                 { return 0 }
func (zeroFacet) Difficulty() float64             { return 0 }
func (zeroFacet) Level() float64                  { return 0 }
func (zeroFacet) Effort() float64                 { return 0 }
func (zeroFacet) Time() float64                   { return 0 }
func (zeroFacet) Bugs() float64                   { return 0 }

func (zeroFacet) MIOriginal() float64     { return 0 }
func (zeroFacet) MISEI() float64          { return 0 }
func (zeroFacet) MIVisualStudio() float64 { return 0 }

func (zeroFacet) AssignmentsSum() float64     { return 0 }
func (zeroFacet) BranchesSum() float64        { return 0 }
func (zeroFacet) ConditionsSum() float64      { return 0 }
func (zeroFacet) MagnitudeSum() float64       { return 0 }
func (zeroFacet) AssignmentsAverage() float64 { return 0 }
func (zeroFacet) BranchesAverage() float64    { return 0 }
func (zeroFacet) ConditionsAverage() float64  { return 0 }
func (zeroFacet) AssignmentsMin() float64     { return 0 }
func (zeroFacet) AssignmentsMax() float64     { return 0 }
func (zeroFacet) BranchesMin() float64        { return 0 }
func (zeroFacet) BranchesMax() float64        { return 0 }
func (zeroFacet) ConditionsMin() float64      { return 0 }
func (zeroFacet) ConditionsMax() float64      { return 0 }

func (zeroFacet) FunctionsSum() float64     { return 0 }
func (zeroFacet) ClosuresSum() float64      { return 0 }
func (zeroFacet) Total() float64            { return 0 }
func (zeroFacet) FunctionsAverage() float64 { return 0 }
func (zeroFacet) ClosuresAverage() float64  { return 0 }
func (zeroFacet) Average() float64          { return 0 }
func (zeroFacet) FunctionsMin() float64     { return 0 }
func (zeroFacet) FunctionsMax() float64     { return 0 }
func (zeroFacet) ClosuresMin() float64      { return 0 }
func (zeroFacet) ClosuresMax() float64      { return 0 }

func (zeroFacet) FnArgsSum() float64          { return 0 }
func (zeroFacet) ClosureArgsSum() float64     { return 0 }
func (zeroFacet) FnArgsAverage() float64      { return 0 }
func (zeroFacet) ClosureArgsAverage() float64 { return 0 }
func (zeroFacet) NargsTotal() float64         { return 0 }
func (zeroFacet) NargsAverage() float64       { return 0 }
func (zeroFacet) FnArgsMin() float64          { return 0 }
func (zeroFacet) FnArgsMax() float64          { return 0 }
func (zeroFacet) ClosureArgsMin() float64     { return 0 }
func (zeroFacet) ClosureArgsMax() float64     { return 0 }

func (zeroFacet) ExitSum() float64     { return 0 }
func (zeroFacet) ExitAverage() float64 { return 0 }
func (zeroFacet) ExitMin() float64     { return 0 }
func (zeroFacet) ExitMax() float64     { return 0 }

func (zeroFacet) ClassWmcSum() float64     { return 0 }
func (zeroFacet) InterfaceWmcSum() float64 { return 0 }
func (zeroFacet) TotalWmc() float64        { return 0 }
func (zeroFacet) ClassNpmSum() float64     { return 0 }
func (zeroFacet) InterfaceNpmSum() float64 { return 0 }
func (zeroFacet) TotalNpm() float64        { return 0 }
func (zeroFacet) ClassNpaSum() float64     { return 0 }
func (zeroFacet) InterfaceNpaSum() float64 { return 0 }
func (zeroFacet) TotalNpa() float64        { return 0 }
