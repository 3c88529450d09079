package drop

import "math"

// Coefficients are the derived quantities the integrator divides by.
// Mass is floored strictly above zero; the radius clamps keep Drag
// positive.
type Coefficients struct {
	Mass       float64 // kg
	SlipFactor float64 // dimensionless Cunningham correction, >= 1
	Drag       float64 // kg/s, slip-corrected Stokes coefficient
}

// ComputeCoefficients derives mass, Cunningham slip factor and drag
// coefficient from drop radius and air viscosity.
//
// Sub-micron drops are comparable in size to the air's mean free path,
// so continuum Stokes drag overestimates the force; the slip factor
// 1 + Kn(A + B exp(-C/Kn)) divides it back down.
func ComputeCoefficients(radius, viscosity float64) Coefficients {
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	density := math.Max(OilDensity-AirDensity, 1.0)
	mass := math.Max(volume*density, MinMass)

	kn := MeanFreePath / math.Max(radius, MinRadius)
	slip := 1 + kn*(CunninghamA+CunninghamB*math.Exp(-CunninghamC/kn))

	drag := 6 * math.Pi * viscosity * radius / slip

	return Coefficients{Mass: mass, SlipFactor: slip, Drag: drag}
}
