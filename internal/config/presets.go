package config

import (
	"fmt"
	"slices"
)

var Presets = map[string]*Config{
	"scenario": {
		Name: "scenario", Capacity: DefaultCapacity,
		Ops: []string{"add X", "add Y", "indexof Y", "first", "last", "len", "cap"},
	},
	"growth": {
		Name: "growth", Capacity: DefaultCapacity,
		Ops: sequence("add", 40),
	},
	"churn": {
		Name: "churn", Capacity: 2,
		Ops: []string{
			"add a", "add b", "add c", "add d", "remove b", "add e",
			"remove a", "remove zz", "add f", "add g", "remove e", "iter",
			"first", "last", "at 2", "at 9", "clear", "first", "len", "cap",
		},
	},
	"search": {
		Name: "search", Capacity: 8,
		Ops: append(sequence("add", 12),
			"indexof v0", "indexof v11", "indexof missing",
			"contains v5", "contains missing", "iter"),
	},
}

func sequence(verb string, n int) []string {
	ops := make([]string, n)
	for i := range ops {
		ops[i] = fmt.Sprintf("%s v%d", verb, i)
	}
	return ops
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	out.Plot = DefaultConfig().Plot
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
