package drop

import (
	"math"
	"math/rand"
)

// State is the single simulated drop. Position is metres above the
// lower plate, up-positive; Velocity is signed m/s. The cached
// coefficients are refreshed whenever radius or viscosity changes, and
// never trusted if they have gone non-finite.
type State struct {
	Position    float64 // m, in [0, gap]
	Velocity    float64 // m/s
	ChargeCount int     // integer multiple of e, in [-25, 25]
	Charge      float64 // C, ChargeCount * e
	Radius      float64 // m
	Mass        float64 // kg
	SlipFactor  float64
	Drag        float64 // kg/s

	viscosity float64 // viscosity the cached coefficients were built for
}

// NewState creates the drop at its documented defaults: charge -8e,
// resting 35% of the way up the gap.
func NewState(p *Parameters) *State {
	s := &State{}
	s.Reset(p)
	return s
}

// Reset reinitializes the drop in place: default charge and radius,
// position at 35% of the gap, zero velocity.
func (s *State) Reset(p *Parameters) {
	s.Position = p.PlateGap * InitialFraction
	s.Velocity = 0
	s.SetChargeCount(DefaultChargeCount)
	s.SetRadius(DefaultRadius, p)
}

// Randomize gives the drop a fresh charge and radius as if a new drop
// had been sprayed into the cell, keeping it at the injection height.
func (s *State) Randomize(p *Parameters, rng *rand.Rand) {
	s.Position = p.PlateGap * InitialFraction
	s.Velocity = 0
	s.SetChargeCount(-(1 + rng.Intn(12)))
	r := MinDropRadius + rng.Float64()*(MaxDropRadius-MinDropRadius)
	s.SetRadius(r, p)
}

// SetChargeCount clamps the multiple into [-25, 25] and recomputes the
// charge in coulombs.
func (s *State) SetChargeCount(n int) {
	if n < MinChargeCount {
		n = MinChargeCount
	}
	if n > MaxChargeCount {
		n = MaxChargeCount
	}
	s.ChargeCount = n
	s.Charge = float64(n) * ElementaryCharge
}

// SetRadius clamps into [0.3, 1.5] um and recomputes mass, slip factor
// and drag coefficient.
func (s *State) SetRadius(r float64, p *Parameters) {
	s.Radius = clamp(r, MinDropRadius, MaxDropRadius)
	p.Radius = s.Radius
	s.refreshCoefficients(p)
}

// SetGap clamps the plate gap into [2, 10] mm. With preserve set the
// drop keeps its relative height in the cell; otherwise it is clamped
// into the new gap.
func (s *State) SetGap(gap float64, p *Parameters, preserve bool) {
	old := p.PlateGap
	p.PlateGap = clamp(gap, MinPlateGap, MaxPlateGap)
	if preserve && old > 0 {
		s.Position = s.Position / old * p.PlateGap
	}
	s.Position = clamp(s.Position, 0, p.PlateGap)
}

// SetViscosity updates the air viscosity and recomputes the drag.
func (s *State) SetViscosity(eta float64, p *Parameters) {
	if eta <= 0 || math.IsNaN(eta) {
		eta = DefaultViscosity
	}
	p.Viscosity = eta
	s.refreshCoefficients(p)
}

func (s *State) refreshCoefficients(p *Parameters) {
	c := ComputeCoefficients(s.Radius, p.Viscosity)
	s.Mass = c.Mass
	s.SlipFactor = c.SlipFactor
	s.Drag = c.Drag
	s.viscosity = p.Viscosity
}

// ensureCoefficients recomputes mass and drag if they are stale
// (radius or viscosity changed behind our back) or degenerate. Called
// once per sub-step before any division.
func (s *State) ensureCoefficients(p *Parameters) {
	stale := s.viscosity != p.Viscosity || (p.Radius > 0 && s.Radius != p.Radius)
	bad := !(s.Drag > 0) || math.IsInf(s.Drag, 0) ||
		!(s.Mass > 0) || math.IsInf(s.Mass, 0)
	if stale || bad {
		if p.Radius > 0 {
			s.Radius = clamp(p.Radius, MinDropRadius, MaxDropRadius)
		}
		s.refreshCoefficients(p)
	}
}
