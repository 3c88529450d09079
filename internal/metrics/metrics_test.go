package metrics_test

import (
	"math"
	"testing"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/metrics"
)

func TestPositionVarianceKnownSequence(t *testing.T) {
	m := metrics.NewPositionVariance()
	s := &drop.State{}
	for _, x := range []float64{1, 2, 3} {
		s.Position = x
		m.Observe(s, 0, 0)
	}
	if v := m.Value(); math.Abs(v-1.0) > 1e-12 {
		t.Errorf("variance of [1 2 3] is %g, want 1", v)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should zero the variance")
	}
	s.Position = 5
	m.Observe(s, 0, 0)
	if m.Value() != 0 {
		t.Error("a single sample has no variance")
	}
}

func TestTerminalErrorZeroAtTerminalVelocity(t *testing.T) {
	p := drop.DefaultParameters()
	s := drop.NewState(p)
	e := p.Field()
	s.Velocity = drop.TerminalVelocity(s, p, e)

	m := metrics.NewTerminalError(p)
	for i := 0; i < 10; i++ {
		m.Observe(s, e, float64(i))
	}
	if v := m.Value(); v > 1e-15 {
		t.Errorf("RMS error %g at exact terminal velocity, want ~0", v)
	}

	s.Velocity += 0.01
	m.Observe(s, e, 11)
	if m.Value() <= 0 {
		t.Error("off-terminal velocity should raise the RMS error")
	}
}

func TestMeanSpeed(t *testing.T) {
	m := metrics.NewMeanSpeed()
	s := &drop.State{}
	for _, v := range []float64{0.01, -0.03} {
		s.Velocity = v
		m.Observe(s, 0, 0)
	}
	if got := m.Value(); math.Abs(got-0.02) > 1e-15 {
		t.Errorf("mean speed %g, want 0.02", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should zero the mean speed")
	}
}
