package metrics

// Stats exposes one raw statistics provider per metric category for a region.
// A facet may be nil when the engine has nothing to report for it.
type Stats interface {
	Loc() LocStats
	Cyclomatic() CyclomaticStats
	Cognitive() CognitiveStats
	Halstead() HalsteadStats
	MI() MIStats
	Abc() AbcStats
	Nom() NomStats
	Nargs() NargsStats
	Nexits() NexitsStats
	Wmc() WmcStats
	Npm() NpmStats
	Npa() NpaStats
}

type LocStats interface {
	Sloc() float64
	Ploc() float64
	Lloc() float64
	Cloc() float64
	Blank() float64
	SlocAverage() float64
	PlocAverage() float64
	LlocAverage() float64
	ClocAverage() float64
	BlankAverage() float64
	SlocMin() float64
	SlocMax() float64
	PlocMin() float64
	PlocMax() float64
	LlocMin() float64
	LlocMax() float64
	ClocMin() float64
	ClocMax() float64
	BlankMin() float64
	BlankMax() float64
}

type CyclomaticStats interface {
	CyclomaticSum() float64
	CyclomaticAverage() float64
	CyclomaticMin() float64
	CyclomaticMax() float64
}

type CognitiveStats interface {
	CognitiveSum() float64
	CognitiveAverage() float64
	CognitiveMin() float64
	CognitiveMax() float64
}

// HalsteadStats reports distinct (U-prefixed) and total operator/operand counts
// plus the derived measures.
type HalsteadStats interface {
	UOperators() float64
	Operators() float64
	UOperands() float64
	Operands() float64
	Length() float64
	EstimatedProgramLength() float64
	PurityRatio() float64
	Vocabulary() float64
	Volume() float64
	Difficulty() float64
	Level() float64
	Effort() float64
	Time() float64
	Bugs() float64
}

type MIStats interface {
	MIOriginal() float64
	MISEI() float64
	MIVisualStudio() float64
}

type AbcStats interface {
	AssignmentsSum() float64
	BranchesSum() float64
	ConditionsSum() float64
	MagnitudeSum() float64
	AssignmentsAverage() float64
	BranchesAverage() float64
	ConditionsAverage() float64
	AssignmentsMin() float64
	AssignmentsMax() float64
	BranchesMin() float64
	BranchesMax() float64
	ConditionsMin() float64
	ConditionsMax() float64
}

type NomStats interface {
	FunctionsSum() float64
	ClosuresSum() float64
	Total() float64
	FunctionsAverage() float64
	ClosuresAverage() float64
	Average() float64
	FunctionsMin() float64
	FunctionsMax() float64
	ClosuresMin() float64
	ClosuresMax() float64
}

type NargsStats interface {
	FnArgsSum() float64
	ClosureArgsSum() float64
	FnArgsAverage() float64
	ClosureArgsAverage() float64
	NargsTotal() float64
	NargsAverage() float64
	FnArgsMin() float64
	FnArgsMax() float64
	ClosureArgsMin() float64
	ClosureArgsMax() float64
}

type NexitsStats interface {
	ExitSum() float64
	ExitAverage() float64
	ExitMin() float64
	ExitMax() float64
}

type WmcStats interface {
	ClassWmcSum() float64
	InterfaceWmcSum() float64
	TotalWmc() float64
}

type NpmStats interface {
	ClassNpmSum() float64
	InterfaceNpmSum() float64
	TotalNpm() float64
}

type NpaStats interface {
	ClassNpaSum() float64
	InterfaceNpaSum() float64
	TotalNpa() float64
}
