package config_test

import (
	"path/filepath"
	"testing"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/config"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

func TestDefaultConfigMatchesSliderDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.Voltage != drop.DefaultVoltage {
		t.Errorf("voltage %g, want %g", cfg.Voltage, drop.DefaultVoltage)
	}
	if cfg.PlateGap != drop.DefaultPlateGap {
		t.Errorf("gap %g, want %g", cfg.PlateGap, drop.DefaultPlateGap)
	}
	if cfg.ChargeCount != drop.DefaultChargeCount {
		t.Errorf("charge %d, want %d", cfg.ChargeCount, drop.DefaultChargeCount)
	}
	if !cfg.FieldOn {
		t.Error("field should default on")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := config.DefaultConfig()
	cfg.Voltage = 123.5
	cfg.ChargeCount = -3
	cfg.FieldOn = false
	cfg.Seed = 99

	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Voltage != cfg.Voltage || loaded.ChargeCount != cfg.ChargeCount ||
		loaded.FieldOn != cfg.FieldOn || loaded.Seed != cfg.Seed {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBuildClampsOutOfRangeValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Voltage = 1e6
	cfg.PlateGap = 0.5
	cfg.Radius = 1e-3
	cfg.Temperature = 10
	cfg.ChargeCount = 999

	p, s := cfg.Build()

	if p.Voltage != drop.MaxVoltage {
		t.Errorf("voltage %g, want clamped to %g", p.Voltage, drop.MaxVoltage)
	}
	if p.PlateGap != drop.MaxPlateGap {
		t.Errorf("gap %g, want clamped to %g", p.PlateGap, drop.MaxPlateGap)
	}
	if s.Radius != drop.MaxDropRadius {
		t.Errorf("radius %g, want clamped to %g", s.Radius, drop.MaxDropRadius)
	}
	if p.Temperature != drop.MinTemperature {
		t.Errorf("temperature %g, want clamped to %g", p.Temperature, drop.MinTemperature)
	}
	if s.ChargeCount != drop.MaxChargeCount {
		t.Errorf("charge %d, want clamped to %d", s.ChargeCount, drop.MaxChargeCount)
	}
	if s.Mass <= 0 || s.Drag <= 0 {
		t.Errorf("built drop has degenerate coefficients: m=%g c=%g", s.Mass, s.Drag)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := config.GetPreset("freefall")
	if cfg == nil {
		t.Fatal("freefall preset missing")
	}
	if cfg.FieldOn || cfg.Voltage != 0 {
		t.Errorf("freefall should switch the field off, got on=%v V=%g", cfg.FieldOn, cfg.Voltage)
	}
	// Unset fields come from the defaults.
	if cfg.PlateGap != drop.DefaultPlateGap || cfg.Viscosity != drop.DefaultViscosity {
		t.Errorf("preset did not inherit defaults: gap=%g eta=%g", cfg.PlateGap, cfg.Viscosity)
	}

	if config.GetPreset("no-such-preset") != nil {
		t.Error("unknown preset should return nil")
	}
}

func TestListPresetsCoversAllNames(t *testing.T) {
	names := config.ListPresets()
	if len(names) != len(config.Presets) {
		t.Fatalf("listed %d presets, map has %d", len(names), len(config.Presets))
	}
	for _, name := range names {
		if config.GetPreset(name) == nil {
			t.Errorf("listed preset %q not resolvable", name)
		}
	}
}
