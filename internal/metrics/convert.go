package metrics

import "math"

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// count is finite plus a floor at 0; negative counts are measurement artifacts.
func count(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

// ConvertLoc builds a Loc record from raw line statistics.
func ConvertLoc(s LocStats) Loc {
	return Loc{
		Sloc:         count(s.Sloc()),
		Ploc:         count(s.Ploc()),
		Lloc:         count(s.Lloc()),
		Cloc:         count(s.Cloc()),
		Blank:        count(s.Blank()),
		SlocAverage:  count(s.SlocAverage()),
		PlocAverage:  count(s.PlocAverage()),
		LlocAverage:  count(s.LlocAverage()),
		ClocAverage:  count(s.ClocAverage()),
		BlankAverage: count(s.BlankAverage()),
		SlocMin:      count(s.SlocMin()),
		SlocMax:      count(s.SlocMax()),
		PlocMin:      count(s.PlocMin()),
		PlocMax:      count(s.PlocMax()),
		LlocMin:      count(s.LlocMin()),
		LlocMax:      count(s.LlocMax()),
		ClocMin:      count(s.ClocMin()),
		ClocMax:      count(s.ClocMax()),
		BlankMin:     count(s.BlankMin()),
		BlankMax:     count(s.BlankMax()),
	}
}

func ConvertCyclomatic(s CyclomaticStats) Cyclomatic {
	return Cyclomatic{
		Sum:     count(s.CyclomaticSum()),
		Average: count(s.CyclomaticAverage()),
		Min:     count(s.CyclomaticMin()),
		Max:     count(s.CyclomaticMax()),
	}
}

func ConvertCognitive(s CognitiveStats) Cognitive {
	return Cognitive{
		Sum:     count(s.CognitiveSum()),
		Average: count(s.CognitiveAverage()),
		Min:     count(s.CognitiveMin()),
		Max:     count(s.CognitiveMax()),
	}
}

// ConvertHalstead copies the Halstead measures. Engines commonly report Inf or
// NaN for empty regions (log of zero, division by zero); those become 0.
func ConvertHalstead(s HalsteadStats) Halstead {
	return Halstead{
		N1:                     count(s.UOperators()),
		BigN1:                  count(s.Operators()),
		N2:                     count(s.UOperands()),
		BigN2:                  count(s.Operands()),
		Length:                 count(s.Length()),
		EstimatedProgramLength: finite(s.EstimatedProgramLength()),
		PurityRatio:            finite(s.PurityRatio()),
		Vocabulary:             count(s.Vocabulary()),
		Volume:                 finite(s.Volume()),
		Difficulty:             finite(s.Difficulty()),
		Level:                  finite(s.Level()),
		Effort:                 finite(s.Effort()),
		Time:                   finite(s.Time()),
		Bugs:                   finite(s.Bugs()),
	}
}

// ConvertMI copies the maintainability index variants. They are not counts and
// keep their sign.
func ConvertMI(s MIStats) MaintainabilityIndex {
	return MaintainabilityIndex{
		Original:     finite(s.MIOriginal()),
		SEI:          finite(s.MISEI()),
		VisualStudio: finite(s.MIVisualStudio()),
	}
}

func ConvertAbc(s AbcStats) Abc {
	return Abc{
		Assignments:        count(s.AssignmentsSum()),
		Branches:           count(s.BranchesSum()),
		Conditions:         count(s.ConditionsSum()),
		Magnitude:          count(s.MagnitudeSum()),
		AssignmentsAverage: count(s.AssignmentsAverage()),
		BranchesAverage:    count(s.BranchesAverage()),
		ConditionsAverage:  count(s.ConditionsAverage()),
		AssignmentsMin:     count(s.AssignmentsMin()),
		AssignmentsMax:     count(s.AssignmentsMax()),
		BranchesMin:        count(s.BranchesMin()),
		BranchesMax:        count(s.BranchesMax()),
		ConditionsMin:      count(s.ConditionsMin()),
		ConditionsMax:      count(s.ConditionsMax()),
	}
}

func ConvertNom(s NomStats) Nom {
	return Nom{
		Functions:        count(s.FunctionsSum()),
		Closures:         count(s.ClosuresSum()),
		Total:            count(s.Total()),
		FunctionsAverage: count(s.FunctionsAverage()),
		ClosuresAverage:  count(s.ClosuresAverage()),
		Average:          count(s.Average()),
		FunctionsMin:     count(s.FunctionsMin()),
		FunctionsMax:     count(s.FunctionsMax()),
		ClosuresMin:      count(s.ClosuresMin()),
		ClosuresMax:      count(s.ClosuresMax()),
	}
}

func ConvertNargs(s NargsStats) Nargs {
	return Nargs{
		TotalFunctions:   count(s.FnArgsSum()),
		TotalClosures:    count(s.ClosureArgsSum()),
		AverageFunctions: count(s.FnArgsAverage()),
		AverageClosures:  count(s.ClosureArgsAverage()),
		Total:            count(s.NargsTotal()),
		Average:          count(s.NargsAverage()),
		FunctionsMin:     count(s.FnArgsMin()),
		FunctionsMax:     count(s.FnArgsMax()),
		ClosuresMin:      count(s.ClosureArgsMin()),
		ClosuresMax:      count(s.ClosureArgsMax()),
	}
}

func ConvertNexits(s NexitsStats) Nexits {
	return Nexits{
		Sum:     count(s.ExitSum()),
		Average: count(s.ExitAverage()),
		Min:     count(s.ExitMin()),
		Max:     count(s.ExitMax()),
	}
}

func ConvertWmc(s WmcStats) Wmc {
	return Wmc{
		Classes:    count(s.ClassWmcSum()),
		Interfaces: count(s.InterfaceWmcSum()),
		Total:      count(s.TotalWmc()),
	}
}

func ConvertNpm(s NpmStats) Npm {
	return Npm{
		Classes:    count(s.ClassNpmSum()),
		Interfaces: count(s.InterfaceNpmSum()),
		Total:      count(s.TotalNpm()),
	}
}

func ConvertNpa(s NpaStats) Npa {
	return Npa{
		Classes:    count(s.ClassNpaSum()),
		Interfaces: count(s.InterfaceNpaSum()),
		Total:      count(s.TotalNpa()),
	}
}
