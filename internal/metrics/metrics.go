// Package metrics defines the language-neutral metric records attached to every
// code region and the converters that build them from an engine's raw statistics.
package metrics

import (
	"fmt"
	"sort"
)

// Group names, in the order they appear in a CodeMetrics record.
const (
	GroupCyclomatic = "cyclomatic"
	GroupCognitive  = "cognitive"
	GroupHalstead   = "halstead"
	GroupLoc        = "loc"
	GroupMI         = "mi"
	GroupAbc        = "abc"
	GroupNom        = "nom"
	GroupNargs      = "nargs"
	GroupNexits     = "nexits"
	GroupWmc        = "wmc"
	GroupNpm        = "npm"
	GroupNpa        = "npa"
)

// Value is one named metric of a group.
type Value struct {
	Name  string
	Value float64
}

// Group is a named, ordered set of metric values.
type Group struct {
	Name   string
	Values []Value
}

// CodeMetrics holds exactly one record per metric category. Every field is
// populated for every region, whatever its kind or language.
type CodeMetrics struct {
	Cyclomatic Cyclomatic           `json:"cyclomatic" yaml:"cyclomatic" toml:"cyclomatic"`
	Cognitive  Cognitive            `json:"cognitive" yaml:"cognitive" toml:"cognitive"`
	Halstead   Halstead             `json:"halstead" yaml:"halstead" toml:"halstead"`
	Loc        Loc                  `json:"loc" yaml:"loc" toml:"loc"`
	MI         MaintainabilityIndex `json:"mi" yaml:"mi" toml:"mi"`
	Abc        Abc                  `json:"abc" yaml:"abc" toml:"abc"`
	Nom        Nom                  `json:"nom" yaml:"nom" toml:"nom"`
	Nargs      Nargs                `json:"nargs" yaml:"nargs" toml:"nargs"`
	Nexits     Nexits               `json:"nexits" yaml:"nexits" toml:"nexits"`
	Wmc        Wmc                  `json:"wmc" yaml:"wmc" toml:"wmc"`
	Npm        Npm                  `json:"npm" yaml:"npm" toml:"npm"`
	Npa        Npa                  `json:"npa" yaml:"npa" toml:"npa"`
}

// Groups returns the twelve groups in record order.
func (m CodeMetrics) Groups() []Group {
	return []Group{
		{GroupCyclomatic, m.Cyclomatic.Values()},
		{GroupCognitive, m.Cognitive.Values()},
		{GroupHalstead, m.Halstead.Values()},
		{GroupLoc, m.Loc.Values()},
		{GroupMI, m.MI.Values()},
		{GroupAbc, m.Abc.Values()},
		{GroupNom, m.Nom.Values()},
		{GroupNargs, m.Nargs.Values()},
		{GroupNexits, m.Nexits.Values()},
		{GroupWmc, m.Wmc.Values()},
		{GroupNpm, m.Npm.Values()},
		{GroupNpa, m.Npa.Values()},
	}
}

// Flatten returns every metric keyed as "<group>.<metric>".
func (m CodeMetrics) Flatten() map[string]float64 {
	out := make(map[string]float64, 96)
	for _, g := range m.Groups() {
		for _, v := range g.Values {
			out[g.Name+"."+v.Name] = v.Value
		}
	}
	return out
}

// Lookup returns a single metric by its flattened key.
func (m CodeMetrics) Lookup(key string) (float64, bool) {
	v, ok := m.Flatten()[key]
	return v, ok
}

// Keys returns all flattened metric keys in sorted order.
func Keys() []string {
	flat := CodeMetrics{}.Flatten()
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m CodeMetrics) String() string {
	return fmt.Sprintf("CodeMetrics(cc=%v, cognitive=%v, sloc=%v, mi=%.2f)",
		m.Cyclomatic.Sum, m.Cognitive.Sum, m.Loc.Sloc, m.MI.VisualStudio)
}
