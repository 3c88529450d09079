package drop

import "math"

// Step advances the drop by one sub-step of duration dt under field E
// (V/m, up-positive). Gravity, the electric force and the thermal kick
// are applied explicitly; the drag term is applied implicitly, because
// the drag time constant mass/drag (~10us for every permitted radius)
// is far below the sub-step and an explicit drag term diverges there.
// The implicit form relaxes velocity toward the same analytic terminal
// velocity the explicit equation defines.
//
// The thermal kick's standard deviation is
//
//	NoiseScale * sqrt(2 kB T c / dt)
//
// which is the discretized fluctuation-dissipation relation: halving dt
// grows the per-step deviation by sqrt(2) so the variance accumulated
// per unit time is invariant. The 1/sqrt(dt) scaling is a correctness
// requirement, not tuning.
func Step(s *State, p *Parameters, e float64, dt float64, noise NoiseSource) {
	if dt <= 0 {
		return
	}
	s.ensureCoefficients(p)

	gravity := -s.Mass * p.Gravity
	electric := s.Charge * e

	noiseStd := NoiseScale * math.Sqrt(2*Boltzmann*p.Temperature*s.Drag/dt)
	thermal := p.NoiseBoost * noiseStd * noise.Sample()

	// v' = (v + F dt / m) / (1 + c dt / m), fixed point v = F / c.
	s.Velocity = (s.Velocity + (gravity+electric+thermal)/s.Mass*dt) /
		(1 + s.Drag/s.Mass*dt)

	// Cap speed relative to the noise-free terminal velocity so a drop
	// far from balance stays visible instead of teleporting between
	// plates. An unbalanced cell still reads as unbalanced: the cap
	// grows with the imbalance.
	vt := (gravity + electric) / s.Drag
	limit := math.Max(2*math.Abs(vt), MinSpeedCap)
	if floor := 0.25 * BaseMaxSpeed; limit < floor {
		limit = floor
	}
	if s.Velocity > limit {
		s.Velocity = limit
	} else if s.Velocity < -limit {
		s.Velocity = -limit
	}

	s.Position += s.Velocity * dt

	// Partial elastic bounce off either plate.
	if s.Position < 0 {
		s.Position = 0
		s.Velocity *= -BounceDamp
	} else if s.Position > p.PlateGap {
		s.Position = p.PlateGap
		s.Velocity *= -BounceDamp
	}
}

// TerminalVelocity returns the analytic steady-state velocity under the
// current deterministic forces: (gravity + electric) / drag, signed,
// up-positive.
func TerminalVelocity(s *State, p *Parameters, e float64) float64 {
	if !(s.Drag > 0) {
		return 0
	}
	return (-s.Mass*p.Gravity + s.Charge*e) / s.Drag
}
