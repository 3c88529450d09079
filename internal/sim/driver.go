package sim

import (
	"math"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// Advance consumes one rendered frame's elapsed wall-clock time in
// fixed sub-steps, recomputing the field each sub-step so a polarity
// pulse can flip it mid-frame. Non-finite elapsed time is treated as 0
// and the total is clamped to keep per-frame work bounded under slow
// rendering. Returns the field value used during the final sub-step,
// for readouts.
func Advance(s *drop.State, p *drop.Parameters, elapsed float64, noise drop.NoiseSource) float64 {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed < 0 {
		elapsed = 0
	}
	if elapsed > drop.MaxFrame {
		elapsed = drop.MaxFrame
	}

	field := p.Field()
	for remaining := elapsed; remaining > 0; {
		dt := drop.SubStep
		if remaining < dt {
			dt = remaining
		}
		remaining -= dt

		if p.PulseTimer > 0 {
			p.PulseTimer -= dt
			if p.PulseTimer <= 0 {
				p.PulseTimer = 0
				p.Polarity = drop.DefaultPolarity
			}
		}

		field = p.Field()
		drop.Step(s, p, field, dt, noise)
	}
	return field
}
