package config

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/san-kum/mathsys/internal/mapexpr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.Plot.Height <= 0 || cfg.Plot.Width <= 0 {
		t.Error("plot size should be positive")
	}
	if cfg.Precision <= 0 {
		t.Error("precision should be positive")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathsys.yaml")
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Plot.Height = 20
	cfg.Presets = map[string]Preset{"mine": {Expr: "x -> 3*x", Dim: 2}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", got.LogLevel)
	}
	if got.Plot.Height != 20 {
		t.Errorf("expected height 20, got %d", got.Plot.Height)
	}
	if got.Plot.Width != DefaultPlotWidth {
		t.Errorf("expected width %d, got %d", DefaultPlotWidth, got.Plot.Width)
	}
	if p := got.Presets["mine"]; p.Expr != "x -> 3*x" || p.Dim != 2 {
		t.Errorf("expected preset mine, got %+v", p)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("identity5")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Dim != 5 {
		t.Errorf("expected dim 5, got %d", p.Dim)
	}
	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestConfig_Preset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets = map[string]Preset{"scaled": {Expr: "x -> 4*x", Dim: 1}}

	p, ok := cfg.Preset("scaled")
	if !ok || p.Expr != "x -> 4*x" {
		t.Errorf("expected user preset to shadow built-in, got %+v", p)
	}
	if _, ok := cfg.Preset("projection"); !ok {
		t.Error("expected built-in preset projection")
	}
	if _, ok := cfg.Preset("nope"); ok {
		t.Error("expected unknown preset to be missing")
	}
}

func TestPresets_Compile(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			p := GetPreset(name)
			var opts []mapexpr.Option
			if p.Dim > 0 {
				opts = append(opts, mapexpr.WithDim(p.Dim))
			}
			if _, err := mapexpr.Compile(p.Expr, opts...); err != nil {
				t.Errorf("expected %q to compile, got %v", p.Expr, err)
			}
		})
	}
}
