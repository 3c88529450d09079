package drop

import "math"

// Slider limits. Setters clamp into these ranges so the numerical core
// never sees an out-of-range value.
const (
	MinPlateGap    = 2e-3   // m
	MaxPlateGap    = 10e-3  // m
	MinDropRadius  = 0.3e-6 // m
	MaxDropRadius  = 1.5e-6 // m
	MinVoltage     = 0.0    // V
	MaxVoltage     = 8000.0 // V
	MinTemperature = 260.0  // K
	MaxTemperature = 330.0  // K
	MinNoiseBoost  = 0.0
	MaxNoiseBoost  = 2.0
	MinChargeCount = -25
	MaxChargeCount = 25
)

// Documented defaults restored by Reset.
const (
	DefaultVoltage     = 2000.0  // V
	DefaultPlateGap    = 5e-3    // m
	DefaultRadius      = 0.9e-6  // m
	DefaultViscosity   = 1.8e-5  // Pa s
	DefaultTemperature = 295.0   // K
	DefaultNoiseBoost  = 1.0
	DefaultGravity     = 9.81    // m/s^2
	DefaultChargeCount = -8
	DefaultPolarity    = 1.0
	InitialFraction    = 0.35 // initial position as a fraction of the gap
)

// Parameters is the slider-controlled configuration read by the
// integrator each sub-step. Polarity is +1 when the upper plate is at
// +V and -1 when flipped; PulseTimer counts down a temporary flip.
type Parameters struct {
	Voltage     float64 // V across the plates
	PlateGap    float64 // m
	Radius      float64 // m, forwarded to the drop on SetRadius
	Viscosity   float64 // Pa s
	Temperature float64 // K
	NoiseBoost  float64 // 0 disables thermal forcing
	Gravity     float64 // m/s^2
	FieldOn     bool
	Polarity    float64 // +1 or -1
	PulseTimer  float64 // s remaining of a polarity pulse
}

// DefaultParameters returns the documented slider defaults.
func DefaultParameters() *Parameters {
	return &Parameters{
		Voltage:     DefaultVoltage,
		PlateGap:    DefaultPlateGap,
		Radius:      DefaultRadius,
		Viscosity:   DefaultViscosity,
		Temperature: DefaultTemperature,
		NoiseBoost:  DefaultNoiseBoost,
		Gravity:     DefaultGravity,
		FieldOn:     true,
		Polarity:    DefaultPolarity,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetVoltage clamps into [MinVoltage, MaxVoltage].
func (p *Parameters) SetVoltage(v float64) {
	p.Voltage = clamp(v, MinVoltage, MaxVoltage)
}

// SetTemperature clamps into [MinTemperature, MaxTemperature].
func (p *Parameters) SetTemperature(t float64) {
	p.Temperature = clamp(t, MinTemperature, MaxTemperature)
}

// SetNoiseBoost clamps into [MinNoiseBoost, MaxNoiseBoost].
func (p *Parameters) SetNoiseBoost(b float64) {
	p.NoiseBoost = clamp(b, MinNoiseBoost, MaxNoiseBoost)
}

// Pulse flips the plate polarity for the given duration. The frame
// driver counts the timer down and restores the default sign.
func (p *Parameters) Pulse(duration float64) {
	p.Polarity = -DefaultPolarity
	p.PulseTimer = duration
}

// Field returns the signed electric field between the plates in V/m,
// up-positive. Positive polarity puts the upper plate at +V, so the
// field vector points down and a negative drop is pulled toward the
// upper plate. Returns 0 when the field is switched off.
func (p *Parameters) Field() float64 {
	if !p.FieldOn {
		return 0
	}
	gap := p.PlateGap
	if gap < MinGap {
		gap = MinGap
	}
	return -p.Polarity * p.Voltage / gap
}

// Sanitize re-clamps every slider value. Used after loading external
// configuration so the core never sees an out-of-range or non-finite
// parameter.
func (p *Parameters) Sanitize() {
	if math.IsNaN(p.Voltage) || math.IsInf(p.Voltage, 0) {
		p.Voltage = DefaultVoltage
	}
	p.Voltage = clamp(p.Voltage, MinVoltage, MaxVoltage)
	p.PlateGap = clamp(p.PlateGap, MinPlateGap, MaxPlateGap)
	p.Radius = clamp(p.Radius, MinDropRadius, MaxDropRadius)
	if p.Viscosity <= 0 || math.IsNaN(p.Viscosity) {
		p.Viscosity = DefaultViscosity
	}
	p.Temperature = clamp(p.Temperature, MinTemperature, MaxTemperature)
	p.NoiseBoost = clamp(p.NoiseBoost, MinNoiseBoost, MaxNoiseBoost)
	if p.Gravity <= 0 || math.IsNaN(p.Gravity) {
		p.Gravity = DefaultGravity
	}
	if p.Polarity >= 0 {
		p.Polarity = 1
	} else {
		p.Polarity = -1
	}
	if p.PulseTimer < 0 || math.IsNaN(p.PulseTimer) {
		p.PulseTimer = 0
	}
}
