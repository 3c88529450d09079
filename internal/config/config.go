package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// Config is the yaml-loadable description of a simulation setup. All
// quantities are SI; display conversions happen in the UI only.
type Config struct {
	Voltage     float64 `yaml:"voltage"`      // V
	PlateGap    float64 `yaml:"plate_gap"`    // m
	Radius      float64 `yaml:"radius"`       // m
	Viscosity   float64 `yaml:"viscosity"`    // Pa s
	Temperature float64 `yaml:"temperature"`  // K
	NoiseBoost  float64 `yaml:"noise_boost"`
	Gravity     float64 `yaml:"gravity"`      // m/s^2
	FieldOn     bool    `yaml:"field_on"`
	ChargeCount int     `yaml:"charge_count"` // multiple of e

	Duration  float64 `yaml:"duration"`   // s, headless runs
	FrameRate float64 `yaml:"frame_rate"` // fps
	Seed      int64   `yaml:"seed"`
}

// DefaultConfig mirrors the documented slider defaults.
func DefaultConfig() *Config {
	return &Config{
		Voltage:     drop.DefaultVoltage,
		PlateGap:    drop.DefaultPlateGap,
		Radius:      drop.DefaultRadius,
		Viscosity:   drop.DefaultViscosity,
		Temperature: drop.DefaultTemperature,
		NoiseBoost:  drop.DefaultNoiseBoost,
		Gravity:     drop.DefaultGravity,
		FieldOn:     true,
		ChargeCount: drop.DefaultChargeCount,
		Duration:    10.0,
		FrameRate:   60.0,
		Seed:        1,
	}
}

// Load reads a yaml config, filling unset fields from the defaults.
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

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build materializes clamped parameters and a drop initialized from
// this config. Out-of-range yaml values are silently clamped; the
// numerical core never sees them.
func (c *Config) Build() (*drop.Parameters, *drop.State) {
	p := drop.DefaultParameters()
	p.Voltage = c.Voltage
	p.PlateGap = c.PlateGap
	p.Radius = c.Radius
	p.Viscosity = c.Viscosity
	p.Temperature = c.Temperature
	p.NoiseBoost = c.NoiseBoost
	p.Gravity = c.Gravity
	p.FieldOn = c.FieldOn
	p.Sanitize()

	s := drop.NewState(p)
	s.SetChargeCount(c.ChargeCount)
	s.SetRadius(p.Radius, p)
	return p, s
}
