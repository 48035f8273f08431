package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Chart defaults.
const (
	DefaultChartWidth    = 1440
	DefaultChartHeight   = 810
	DefaultChartMaxTicks = 40
)

// YAMLConfig represents the structure of the config.yaml file.
// Settings that are easier to manage in a file than in env vars.
type YAMLConfig struct {
	StatusColors map[string]string `yaml:"status_colors"` // Fixed status label -> "#rrggbb"
	Chart        ChartConfig       `yaml:"chart"`
}

// ChartConfig controls the rendered SVG chart.
type ChartConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MaxTicks int `yaml:"max_ticks"` // Labelled x-axis ticks before thinning
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// A missing file yields the defaults without error.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	cfg := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.setDefaults()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	return cfg, nil
}

func (c *YAMLConfig) setDefaults() {
	if c.Chart.Width <= 0 {
		c.Chart.Width = DefaultChartWidth
	}
	if c.Chart.Height <= 0 {
		c.Chart.Height = DefaultChartHeight
	}
	if c.Chart.MaxTicks <= 0 {
		c.Chart.MaxTicks = DefaultChartMaxTicks
	}
	if c.StatusColors == nil {
		c.StatusColors = map[string]string{}
	}
}

// GetChart returns the chart settings, falling back to defaults on a nil config.
func (c *YAMLConfig) GetChart() ChartConfig {
	if c == nil {
		return ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight, MaxTicks: DefaultChartMaxTicks}
	}
	return c.Chart
}

// GetStatusColors returns the configured status colors.
func (c *YAMLConfig) GetStatusColors() map[string]string {
	if c == nil {
		return nil
	}
	return c.StatusColors
}
