package config

import (
	"maps"
	"slices"
)

var Presets = map[string]*Preset{
	"projection": {
		Expr:        "x -> [1 0; 0 0]*x",
		Description: "projection onto the first coordinate",
	},
	"shift": {
		Expr:        "x -> [1 0; 0 0]*x + [2, 0]",
		Description: "projection followed by a shift",
	},
	"identity5": {
		Expr: "x -> x", Dim: 5,
		Description: "identity on a 5-dimensional space",
	},
	"scaled": {
		Expr: "x -> 2*x", Dim: 3,
		Description: "uniform scaling by 2",
	},
	"actuated": {
		Expr:        "(x, u) -> [1 1; 0 1]*x + [0; 1]*u",
		Description: "discretized double integrator",
	},
	"affine-actuated": {
		Expr:        "(x, u) -> [1 1; 0 1]*x + [0; 1]*u + [0, -1]",
		Description: "double integrator under constant drift",
	},
}

func GetPreset(name string) *Preset {
	return Presets[name]
}

func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}
