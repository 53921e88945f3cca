package metrics

import "fmt"

// Cyclomatic is McCabe's cyclomatic complexity summarized over a region.
type Cyclomatic struct {
	Sum     float64 `json:"sum" yaml:"sum" toml:"sum"`
	Average float64 `json:"average" yaml:"average" toml:"average"`
	Min     float64 `json:"min" yaml:"min" toml:"min"`
	Max     float64 `json:"max" yaml:"max" toml:"max"`
}

func (c Cyclomatic) Values() []Value {
	return []Value{{"sum", c.Sum}, {"average", c.Average}, {"min", c.Min}, {"max", c.Max}}
}

func (c Cyclomatic) String() string {
	return fmt.Sprintf("CyclomaticMetrics(sum=%v, average=%.2f, min=%v, max=%v)", c.Sum, c.Average, c.Min, c.Max)
}

// Cognitive is nesting-weighted cognitive complexity summarized over a region.
type Cognitive struct {
	Sum     float64 `json:"sum" yaml:"sum" toml:"sum"`
	Average float64 `json:"average" yaml:"average" toml:"average"`
	Min     float64 `json:"min" yaml:"min" toml:"min"`
	Max     float64 `json:"max" yaml:"max" toml:"max"`
}

func (c Cognitive) Values() []Value {
	return []Value{{"sum", c.Sum}, {"average", c.Average}, {"min", c.Min}, {"max", c.Max}}
}

// Halstead holds the operator/operand counts and the measures derived from them.
type Halstead struct {
	N1                     float64 `json:"n1" yaml:"n1" toml:"n1"`
	BigN1                  float64 `json:"big_n1" yaml:"big_n1" toml:"big_n1"`
	N2                     float64 `json:"n2" yaml:"n2" toml:"n2"`
	BigN2                  float64 `json:"big_n2" yaml:"big_n2" toml:"big_n2"`
	Length                 float64 `json:"length" yaml:"length" toml:"length"`
	EstimatedProgramLength float64 `json:"estimated_program_length" yaml:"estimated_program_length" toml:"estimated_program_length"`
	PurityRatio            float64 `json:"purity_ratio" yaml:"purity_ratio" toml:"purity_ratio"`
	Vocabulary             float64 `json:"vocabulary" yaml:"vocabulary" toml:"vocabulary"`
	Volume                 float64 `json:"volume" yaml:"volume" toml:"volume"`
	Difficulty             float64 `json:"difficulty" yaml:"difficulty" toml:"difficulty"`
	Level                  float64 `json:"level" yaml:"level" toml:"level"`
	Effort                 float64 `json:"effort" yaml:"effort" toml:"effort"`
	Time                   float64 `json:"time" yaml:"time" toml:"time"`
	Bugs                   float64 `json:"bugs" yaml:"bugs" toml:"bugs"`
}

func (h Halstead) Values() []Value {
	return []Value{
		{"n1", h.N1},
		{"big_n1", h.BigN1},
		{"n2", h.N2},
		{"big_n2", h.BigN2},
		{"length", h.Length},
		{"estimated_program_length", h.EstimatedProgramLength},
		{"purity_ratio", h.PurityRatio},
		{"vocabulary", h.Vocabulary},
		{"volume", h.Volume},
		{"difficulty", h.Difficulty},
		{"level", h.Level},
		{"effort", h.Effort},
		{"time", h.Time},
		{"bugs", h.Bugs},
	}
}

func (h Halstead) String() string {
	return fmt.Sprintf("HalsteadMetrics(volume=%.2f, difficulty=%.2f, effort=%.2f, bugs=%.3f)",
		h.Volume, h.Difficulty, h.Effort, h.Bugs)
}

// Loc counts source, physical, logical, comment and blank lines.
type Loc struct {
	Sloc         float64 `json:"sloc" yaml:"sloc" toml:"sloc"`
	Ploc         float64 `json:"ploc" yaml:"ploc" toml:"ploc"`
	Lloc         float64 `json:"lloc" yaml:"lloc" toml:"lloc"`
	Cloc         float64 `json:"cloc" yaml:"cloc" toml:"cloc"`
	Blank        float64 `json:"blank" yaml:"blank" toml:"blank"`
	SlocAverage  float64 `json:"sloc_average" yaml:"sloc_average" toml:"sloc_average"`
	PlocAverage  float64 `json:"ploc_average" yaml:"ploc_average" toml:"ploc_average"`
	LlocAverage  float64 `json:"lloc_average" yaml:"lloc_average" toml:"lloc_average"`
	ClocAverage  float64 `json:"cloc_average" yaml:"cloc_average" toml:"cloc_average"`
	BlankAverage float64 `json:"blank_average" yaml:"blank_average" toml:"blank_average"`
	SlocMin      float64 `json:"sloc_min" yaml:"sloc_min" toml:"sloc_min"`
	SlocMax      float64 `json:"sloc_max" yaml:"sloc_max" toml:"sloc_max"`
	PlocMin      float64 `json:"ploc_min" yaml:"ploc_min" toml:"ploc_min"`
	PlocMax      float64 `json:"ploc_max" yaml:"ploc_max" toml:"ploc_max"`
	LlocMin      float64 `json:"lloc_min" yaml:"lloc_min" toml:"lloc_min"`
	LlocMax      float64 `json:"lloc_max" yaml:"lloc_max" toml:"lloc_max"`
	ClocMin      float64 `json:"cloc_min" yaml:"cloc_min" toml:"cloc_min"`
	ClocMax      float64 `json:"cloc_max" yaml:"cloc_max" toml:"cloc_max"`
	BlankMin     float64 `json:"blank_min" yaml:"blank_min" toml:"blank_min"`
	BlankMax     float64 `json:"blank_max" yaml:"blank_max" toml:"blank_max"`
}

func (l Loc) Values() []Value {
	return []Value{
		{"sloc", l.Sloc},
		{"ploc", l.Ploc},
		{"lloc", l.Lloc},
		{"cloc", l.Cloc},
		{"blank", l.Blank},
		{"sloc_average", l.SlocAverage},
		{"ploc_average", l.PlocAverage},
		{"lloc_average", l.LlocAverage},
		{"cloc_average", l.ClocAverage},
		{"blank_average", l.BlankAverage},
		{"sloc_min", l.SlocMin},
		{"sloc_max", l.SlocMax},
		{"ploc_min", l.PlocMin},
		{"ploc_max", l.PlocMax},
		{"lloc_min", l.LlocMin},
		{"lloc_max", l.LlocMax},
		{"cloc_min", l.ClocMin},
		{"cloc_max", l.ClocMax},
		{"blank_min", l.BlankMin},
		{"blank_max", l.BlankMax},
	}
}

func (l Loc) String() string {
	return fmt.Sprintf("LocMetrics(sloc=%v, ploc=%v, lloc=%v, cloc=%v, blank=%v)", l.Sloc, l.Ploc, l.Lloc, l.Cloc, l.Blank)
}

// MaintainabilityIndex holds the three common MI variants. Original and SEI may
// be negative; VisualStudio is scaled to 0..100.
type MaintainabilityIndex struct {
	Original     float64 `json:"mi_original" yaml:"mi_original" toml:"mi_original"`
	SEI          float64 `json:"mi_sei" yaml:"mi_sei" toml:"mi_sei"`
	VisualStudio float64 `json:"mi_visual_studio" yaml:"mi_visual_studio" toml:"mi_visual_studio"`
}

func (m MaintainabilityIndex) Values() []Value {
	return []Value{{"mi_original", m.Original}, {"mi_sei", m.SEI}, {"mi_visual_studio", m.VisualStudio}}
}

func (m MaintainabilityIndex) String() string {
	return fmt.Sprintf("MaintainabilityIndex(original=%.2f, sei=%.2f, visual_studio=%.2f)", m.Original, m.SEI, m.VisualStudio)
}

// Abc counts assignments, branches and conditions.
type Abc struct {
	Assignments        float64 `json:"assignments" yaml:"assignments" toml:"assignments"`
	Branches           float64 `json:"branches" yaml:"branches" toml:"branches"`
	Conditions         float64 `json:"conditions" yaml:"conditions" toml:"conditions"`
	Magnitude          float64 `json:"magnitude" yaml:"magnitude" toml:"magnitude"`
	AssignmentsAverage float64 `json:"assignments_average" yaml:"assignments_average" toml:"assignments_average"`
	BranchesAverage    float64 `json:"branches_average" yaml:"branches_average" toml:"branches_average"`
	ConditionsAverage  float64 `json:"conditions_average" yaml:"conditions_average" toml:"conditions_average"`
	AssignmentsMin     float64 `json:"assignments_min" yaml:"assignments_min" toml:"assignments_min"`
	AssignmentsMax     float64 `json:"assignments_max" yaml:"assignments_max" toml:"assignments_max"`
	BranchesMin        float64 `json:"branches_min" yaml:"branches_min" toml:"branches_min"`
	BranchesMax        float64 `json:"branches_max" yaml:"branches_max" toml:"branches_max"`
	ConditionsMin      float64 `json:"conditions_min" yaml:"conditions_min" toml:"conditions_min"`
	ConditionsMax      float64 `json:"conditions_max" yaml:"conditions_max" toml:"conditions_max"`
}

func (a Abc) Values() []Value {
	return []Value{
		{"assignments", a.Assignments},
		{"branches", a.Branches},
		{"conditions", a.Conditions},
		{"magnitude", a.Magnitude},
		{"assignments_average", a.AssignmentsAverage},
		{"branches_average", a.BranchesAverage},
		{"conditions_average", a.ConditionsAverage},
		{"assignments_min", a.AssignmentsMin},
		{"assignments_max", a.AssignmentsMax},
		{"branches_min", a.BranchesMin},
		{"branches_max", a.BranchesMax},
		{"conditions_min", a.ConditionsMin},
		{"conditions_max", a.ConditionsMax},
	}
}

// Nom counts functions and closures.
type Nom struct {
	Functions        float64 `json:"functions" yaml:"functions" toml:"functions"`
	Closures         float64 `json:"closures" yaml:"closures" toml:"closures"`
	Total            float64 `json:"total" yaml:"total" toml:"total"`
	FunctionsAverage float64 `json:"functions_average" yaml:"functions_average" toml:"functions_average"`
	ClosuresAverage  float64 `json:"closures_average" yaml:"closures_average" toml:"closures_average"`
	Average          float64 `json:"average" yaml:"average" toml:"average"`
	FunctionsMin     float64 `json:"functions_min" yaml:"functions_min" toml:"functions_min"`
	FunctionsMax     float64 `json:"functions_max" yaml:"functions_max" toml:"functions_max"`
	ClosuresMin      float64 `json:"closures_min" yaml:"closures_min" toml:"closures_min"`
	ClosuresMax      float64 `json:"closures_max" yaml:"closures_max" toml:"closures_max"`
}

func (n Nom) Values() []Value {
	return []Value{
		{"functions", n.Functions},
		{"closures", n.Closures},
		{"total", n.Total},
		{"functions_average", n.FunctionsAverage},
		{"closures_average", n.ClosuresAverage},
		{"average", n.Average},
		{"functions_min", n.FunctionsMin},
		{"functions_max", n.FunctionsMax},
		{"closures_min", n.ClosuresMin},
		{"closures_max", n.ClosuresMax},
	}
}

// Nargs counts function and closure parameters.
type Nargs struct {
	TotalFunctions   float64 `json:"total_functions" yaml:"total_functions" toml:"total_functions"`
	TotalClosures    float64 `json:"total_closures" yaml:"total_closures" toml:"total_closures"`
	AverageFunctions float64 `json:"average_functions" yaml:"average_functions" toml:"average_functions"`
	AverageClosures  float64 `json:"average_closures" yaml:"average_closures" toml:"average_closures"`
	Total            float64 `json:"total" yaml:"total" toml:"total"`
	Average          float64 `json:"average" yaml:"average" toml:"average"`
	FunctionsMin     float64 `json:"functions_min" yaml:"functions_min" toml:"functions_min"`
	FunctionsMax     float64 `json:"functions_max" yaml:"functions_max" toml:"functions_max"`
	ClosuresMin      float64 `json:"closures_min" yaml:"closures_min" toml:"closures_min"`
	ClosuresMax      float64 `json:"closures_max" yaml:"closures_max" toml:"closures_max"`
}

func (n Nargs) Values() []Value {
	return []Value{
		{"total_functions", n.TotalFunctions},
		{"total_closures", n.TotalClosures},
		{"average_functions", n.AverageFunctions},
		{"average_closures", n.AverageClosures},
		{"total", n.Total},
		{"average", n.Average},
		{"functions_min", n.FunctionsMin},
		{"functions_max", n.FunctionsMax},
		{"closures_min", n.ClosuresMin},
		{"closures_max", n.ClosuresMax},
	}
}

// Nexits counts exit points (returns, throws).
type Nexits struct {
	Sum     float64 `json:"sum" yaml:"sum" toml:"sum"`
	Average float64 `json:"average" yaml:"average" toml:"average"`
	Min     float64 `json:"min" yaml:"min" toml:"min"`
	Max     float64 `json:"max" yaml:"max" toml:"max"`
}

func (n Nexits) Values() []Value {
	return []Value{{"sum", n.Sum}, {"average", n.Average}, {"min", n.Min}, {"max", n.Max}}
}

// Wmc is the weighted methods per class: method complexity summed per class-like
// and interface-like space.
type Wmc struct {
	Classes    float64 `json:"classes" yaml:"classes" toml:"classes"`
	Interfaces float64 `json:"interfaces" yaml:"interfaces" toml:"interfaces"`
	Total      float64 `json:"total" yaml:"total" toml:"total"`
}

func (w Wmc) Values() []Value {
	return []Value{{"classes", w.Classes}, {"interfaces", w.Interfaces}, {"total", w.Total}}
}

// Npm counts public methods.
type Npm struct {
	Classes    float64 `json:"classes" yaml:"classes" toml:"classes"`
	Interfaces float64 `json:"interfaces" yaml:"interfaces" toml:"interfaces"`
	Total      float64 `json:"total" yaml:"total" toml:"total"`
}

func (n Npm) Values() []Value {
	return []Value{{"classes", n.Classes}, {"interfaces", n.Interfaces}, {"total", n.Total}}
}

// Npa counts public attributes.
type Npa struct {
	Classes    float64 `json:"classes" yaml:"classes" toml:"classes"`
	Interfaces float64 `json:"interfaces" yaml:"interfaces" toml:"interfaces"`
	Total      float64 `json:"total" yaml:"total" toml:"total"`
}

func (n Npa) Values() []Value {
	return []Value{{"classes", n.Classes}, {"interfaces", n.Interfaces}, {"total", n.Total}}
}
