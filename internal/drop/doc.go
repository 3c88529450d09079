// Package drop holds the numerical core of the oil-drop simulation:
// the slider parameters, the drop state, and the physics that advances
// them.
//
//   - [ComputeCoefficients]: mass, Cunningham slip factor and
//     slip-corrected Stokes drag from radius and viscosity
//   - [Step]: one sub-step with gravity, electric force, implicit
//     Stokes drag, fluctuation-dissipation thermal noise, a dynamic
//     speed cap and plate-boundary reflection
//   - [TerminalVelocity]: the analytic steady-state velocity the
//     capped integrator converges to
//
// All setters clamp their inputs and every denominator is floored, so
// the core raises no errors; degenerate values are prevented rather
// than detected.
package drop
