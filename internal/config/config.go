package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel   = "info"
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 60
	DefaultPrecision  = 4
)

type Config struct {
	LogLevel  string            `yaml:"log_level"`
	Plot      PlotConfig        `yaml:"plot"`
	Precision int               `yaml:"precision"`
	Presets   map[string]Preset `yaml:"presets,omitempty"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// Preset is a named map expression. Dim is only needed when the expression
// does not fix the state dimension.
type Preset struct {
	Expr        string `yaml:"expr"`
	Dim         int    `yaml:"dim,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Precision: DefaultPrecision,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Preset looks name up in the user presets first, then the built-in ones.
func (c *Config) Preset(name string) (Preset, bool) {
	if p, ok := c.Presets[name]; ok {
		return p, true
	}
	p := GetPreset(name)
	if p == nil {
		return Preset{}, false
	}
	return *p, true
}
