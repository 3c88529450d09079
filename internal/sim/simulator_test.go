package sim_test

import (
	"context"
	"math"
	"testing"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/metrics"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/sim"
)

func newSimulator() *sim.Simulator {
	p := drop.DefaultParameters()
	s := drop.NewState(p)
	return sim.New(s, p, drop.ZeroNoise{})
}

func TestRunRecordsOneSamplePerFrame(t *testing.T) {
	sm := newSimulator()
	result, err := sm.Run(context.Background(), sim.Config{Duration: 1.0, FrameRate: 60.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Samples) != 60 {
		t.Fatalf("got %d samples, want 60", len(result.Samples))
	}

	last := result.Samples[len(result.Samples)-1]
	if last.Time < 0.99 || last.Time > 1.01 {
		t.Errorf("last sample at t=%g, want ~1.0", last.Time)
	}
	first := result.Samples[0]
	if first.Position <= 0 || first.Position > drop.MaxPlateGap {
		t.Errorf("sample position %g outside the cell", first.Position)
	}
}

func TestRunCollectsMetrics(t *testing.T) {
	p := drop.DefaultParameters()
	p.Voltage = 0
	p.FieldOn = false
	p.NoiseBoost = 0
	s := drop.NewState(p)

	sm := sim.New(s, p, drop.ZeroNoise{})
	sm.AddMetric(metrics.NewTerminalError(p))
	sm.AddMetric(metrics.NewMeanSpeed())

	result, err := sm.Run(context.Background(), sim.Config{Duration: 3.0, FrameRate: 60.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rms, ok := result.Metrics["terminal_error"]
	if !ok {
		t.Fatal("terminal_error metric missing from result")
	}
	vt := drop.TerminalVelocity(s, p, 0)
	if rms > 0.05*math.Abs(vt) {
		t.Errorf("terminal RMS error %g too large for a settled free fall (vt %g)", rms, vt)
	}
	if _, ok := result.Metrics["mean_speed"]; !ok {
		t.Error("mean_speed metric missing from result")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	sm := newSimulator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sm.Run(ctx, sim.DefaultConfig())
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
	if len(result.Samples) != 0 {
		t.Errorf("cancelled run recorded %d samples", len(result.Samples))
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	sm := newSimulator()
	if _, err := sm.Run(context.Background(), sim.Config{Duration: 0, FrameRate: 60}); err == nil {
		t.Error("zero duration should be rejected")
	}
	if _, err := sm.Run(context.Background(), sim.Config{Duration: 1, FrameRate: -1}); err == nil {
		t.Error("negative frame rate should be rejected")
	}
}

type frameCounter struct{ n int }

func (f *frameCounter) OnFrame(sim.Sample) { f.n++ }

func TestObserversSeeEveryFrame(t *testing.T) {
	sm := newSimulator()
	fc := &frameCounter{}
	sm.AddObserver(fc)

	if _, err := sm.Run(context.Background(), sim.Config{Duration: 0.5, FrameRate: 60}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if fc.n != 30 {
		t.Errorf("observer saw %d frames, want 30", fc.n)
	}
}
