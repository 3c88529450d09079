package metrics

import (
	"math"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// MeanSpeed averages |velocity| over a run.
type MeanSpeed struct {
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{}
}

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(s *drop.State, field, t float64) {
	m.total += math.Abs(s.Velocity)
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
