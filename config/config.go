// Package config provides configuration loading and access for the orrery.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation and presentation parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scale      ScaleConfig      `yaml:"scale"`
	Render     RenderConfig     `yaml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds viewport constraints and step sizes.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"` // multiplicative, applied per key press
}

// SimulationConfig holds time-scale parameters.
type SimulationConfig struct {
	TimeFactor      float64 `yaml:"time_factor"` // initial value
	MinTimeFactor   float64 `yaml:"min_time_factor"`
	MaxTimeFactor   float64 `yaml:"max_time_factor"`
	TimeFactorStep  float64 `yaml:"time_factor_step"` // multiplicative, applied per key press
	BaseFrames      float64 `yaml:"base_frames"`      // frames per reference orbit at time factor 1
	ReferencePeriod float64 `yaml:"reference_period"` // days; Earth's year
}

// ScaleConfig holds real-unit to pixel-unit conversion factors.
type ScaleConfig struct {
	Distance     float64 `yaml:"distance"`       // pixels per km of orbit radius
	StarRadiusPx float64 `yaml:"star_radius_px"` // the root star's drawn radius
}

// RenderConfig holds orbit-path cache and background parameters.
type RenderConfig struct {
	OrbitSamples   int     `yaml:"orbit_samples"`
	ZoomEpsilon    float64 `yaml:"zoom_epsilon"` // cache valid while |Δzoom| below this
	PanEpsilon     float64 `yaml:"pan_epsilon"`  // cache valid while |Δpan| below this (world units)
	StarfieldCount int     `yaml:"starfield_count"`
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"` // frames per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
