package config

// Presets are named classroom scenarios. Values the preset leaves at
// zero are filled from the defaults by GetPreset.
var Presets = map[string]*Config{
	// Field off: slip-corrected free fall to the lower plate.
	"freefall": {
		Voltage: 0, FieldOn: false, NoiseBoost: 0,
		ChargeCount: -8, Duration: 30.0,
	},
	// Voltage chosen so an -8e, 0.9 um drop hovers near force balance.
	"balanced": {
		Voltage: 107.0, FieldOn: true, NoiseBoost: 0,
		ChargeCount: -8, Duration: 20.0,
	},
	// Small hot drop with boosted thermal forcing: visible Brownian
	// jitter around the balance point.
	"brownian": {
		Voltage: 4.0, FieldOn: true, NoiseBoost: 2.0,
		Radius: 0.3e-6, Temperature: 330.0, ChargeCount: -8,
		Duration: 20.0,
	},
	// Strong field on a heavily charged drop: the dynamic speed cap is
	// what keeps this one watchable.
	"slam": {
		Voltage: 8000.0, FieldOn: true, NoiseBoost: 0,
		ChargeCount: -25, Duration: 10.0,
	},
}

// GetPreset returns a copy of the named preset with unset fields
// filled from the defaults, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.FieldOn = p.FieldOn
	cfg.Voltage = p.Voltage
	cfg.ChargeCount = p.ChargeCount
	if p.PlateGap != 0 {
		cfg.PlateGap = p.PlateGap
	}
	if p.Radius != 0 {
		cfg.Radius = p.Radius
	}
	if p.Viscosity != 0 {
		cfg.Viscosity = p.Viscosity
	}
	if p.Temperature != 0 {
		cfg.Temperature = p.Temperature
	}
	cfg.NoiseBoost = p.NoiseBoost
	if p.Duration != 0 {
		cfg.Duration = p.Duration
	}
	if p.FrameRate != 0 {
		cfg.FrameRate = p.FrameRate
	}
	return cfg
}

// ListPresets returns the preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
