package metrics

import (
	"math"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// TerminalError tracks how far the drop's velocity sits from the
// analytic terminal velocity under the instantaneous forces, as an RMS
// over the run. Near zero means the drop spends the run force-balanced
// or settled at a plate.
type TerminalError struct {
	params  *drop.Parameters
	sumSq   float64
	samples int
}

func NewTerminalError(p *drop.Parameters) *TerminalError {
	return &TerminalError{params: p}
}

func (m *TerminalError) Name() string { return "terminal_error" }

func (m *TerminalError) Observe(s *drop.State, field, t float64) {
	vt := drop.TerminalVelocity(s, m.params, field)
	d := s.Velocity - vt
	m.sumSq += d * d
	m.samples++
}

func (m *TerminalError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *TerminalError) Reset() {
	m.sumSq = 0
	m.samples = 0
}
