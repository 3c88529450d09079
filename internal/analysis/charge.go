// Package analysis implements the data reduction of the actual
// Millikan experiment: recovering drop radius, charge and the
// balancing voltage from observed terminal velocities.
package analysis

import (
	"math"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// BalancingVoltage returns the plate voltage at which the electric
// force on the drop exactly cancels gravity for the current gap. The
// second return is false for an uncharged drop, which no voltage can
// suspend.
func BalancingVoltage(s *drop.State, p *drop.Parameters) (float64, bool) {
	q := math.Abs(s.Charge)
	if q == 0 {
		return 0, false
	}
	return s.Mass * p.Gravity * p.PlateGap / q, true
}

// RadiusFromFallSpeed inverts the slip-corrected Stokes balance
//
//	(4/3) pi r^3 rho g = 6 pi eta r v / C(r)
//
// for the radius of a drop observed falling at terminal speed vFall
// (m/s, magnitude) with the field off. The slip factor depends on r,
// so the closed-form uncorrected radius seeds a fixed-point iteration;
// a handful of rounds is enough for sub-picometre convergence across
// the slider range.
func RadiusFromFallSpeed(vFall, viscosity, gravity float64) float64 {
	if vFall <= 0 || viscosity <= 0 || gravity <= 0 {
		return 0
	}
	rho := math.Max(drop.OilDensity-drop.AirDensity, 1.0)

	r := math.Sqrt(9 * viscosity * vFall / (2 * rho * gravity))
	for i := 0; i < 25; i++ {
		kn := drop.MeanFreePath / math.Max(r, drop.MinRadius)
		slip := 1 + kn*(drop.CunninghamA+drop.CunninghamB*math.Exp(-drop.CunninghamC/kn))
		next := math.Sqrt(9 * viscosity * vFall / (2 * rho * gravity * slip))
		if math.Abs(next-r) < 1e-15 {
			return next
		}
		r = next
	}
	return r
}

// ChargeEstimate is the outcome of a fall/rise measurement pair.
type ChargeEstimate struct {
	Radius   float64 // m, from the field-free fall
	Charge   float64 // C, magnitude
	Multiple int     // nearest integer multiple of e
}

// EstimateCharge reduces a classic measurement pair: the field-free
// terminal fall speed vFall and the terminal rise speed vRise under
// field magnitude e (V/m), both as magnitudes. At terminal rise the
// field carries both the weight and the drag:
//
//	q E = m g + c vRise
func EstimateCharge(vFall, vRise, e, viscosity, gravity float64) (ChargeEstimate, bool) {
	if e <= 0 {
		return ChargeEstimate{}, false
	}
	r := RadiusFromFallSpeed(vFall, viscosity, gravity)
	if r <= 0 {
		return ChargeEstimate{}, false
	}
	c := drop.ComputeCoefficients(r, viscosity)
	q := (c.Mass*gravity + c.Drag*vRise) / e
	return ChargeEstimate{
		Radius:   r,
		Charge:   q,
		Multiple: int(math.Round(q / drop.ElementaryCharge)),
	}, true
}
