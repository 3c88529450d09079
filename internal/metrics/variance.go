package metrics

import "github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"

// PositionVariance accumulates the variance of the drop's position
// over a run with Welford's online update. It is the statistic the
// fluctuation-dissipation scaling check reads: for a fixed simulated
// duration it should not depend on the sub-step size.
type PositionVariance struct {
	samples int
	mean    float64
	m2      float64
}

func NewPositionVariance() *PositionVariance {
	return &PositionVariance{}
}

func (m *PositionVariance) Name() string { return "position_variance" }

func (m *PositionVariance) Observe(s *drop.State, field, t float64) {
	m.samples++
	delta := s.Position - m.mean
	m.mean += delta / float64(m.samples)
	m.m2 += delta * (s.Position - m.mean)
}

func (m *PositionVariance) Value() float64 {
	if m.samples < 2 {
		return 0
	}
	return m.m2 / float64(m.samples-1)
}

func (m *PositionVariance) Reset() {
	m.samples = 0
	m.mean = 0
	m.m2 = 0
}
