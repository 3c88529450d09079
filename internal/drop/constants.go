package drop

// Physical constants (SI).
const (
	Boltzmann        = 1.380649e-23    // J/K
	ElementaryCharge = 1.602176634e-19 // C

	OilDensity   = 920.0   // kg/m^3, watch oil
	AirDensity   = 1.2     // kg/m^3, sea level
	MeanFreePath = 68e-9   // m, air at atmospheric pressure
	MinRadius    = 5e-9    // m, Knudsen denominator floor
	MinMass      = 1e-20   // kg, keeps accelerations finite
	MinGap       = 1e-5    // m, field denominator floor
)

// Cunningham slip correction coefficients: 1 + Kn(A + B exp(-C/Kn)).
const (
	CunninghamA = 1.257
	CunninghamB = 0.4
	CunninghamC = 1.1
)

// Integration and legibility tuning. NoiseScale and the speed caps are
// empirical values that keep the motion watchable at classroom scale.
const (
	SubStep      = 1.0 / 1800.0 // s, fixed integration sub-step
	MaxFrame     = 1.0 / 20.0   // s, per-frame elapsed-time clamp
	BaseMaxSpeed = 0.12         // m/s
	MinSpeedCap  = 0.02         // m/s
	NoiseScale   = 0.6
	BounceDamp   = 0.3 // velocity retained (and flipped) on plate contact
)
