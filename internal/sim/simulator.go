package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

// Simulator drives the frame loop headlessly: fixed frame intervals fed
// to Advance, one Sample recorded per frame, metrics and observers
// notified as the run progresses.
type Simulator struct {
	state     *drop.State
	params    *drop.Parameters
	noise     drop.NoiseSource
	metrics   []Metric
	observers []Observer
}

func New(s *drop.State, p *drop.Parameters, noise drop.NoiseSource) *Simulator {
	return &Simulator{state: s, params: p, noise: noise}
}

func (sm *Simulator) AddMetric(m Metric)     { sm.metrics = append(sm.metrics, m) }
func (sm *Simulator) AddObserver(o Observer) { sm.observers = append(sm.observers, o) }

// State exposes the drop for readouts between frames.
func (sm *Simulator) State() *drop.State { return sm.state }

// Run advances the simulation for cfg.Duration of simulated time and
// returns the recorded samples. It honors context cancellation between
// frames; a frame either fully completes or is not started.
func (sm *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %f", cfg.FrameRate)
	}

	frame := 1.0 / cfg.FrameRate
	frames := int(cfg.Duration / frame)

	result := &Result{
		Samples: make([]Sample, 0, frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range sm.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		field := Advance(sm.state, sm.params, frame, sm.noise)
		t += frame

		if math.IsNaN(sm.state.Position) || math.IsNaN(sm.state.Velocity) {
			return result, fmt.Errorf("invalid state at t=%.4f", t)
		}

		sample := Sample{
			Time:     t,
			Position: sm.state.Position,
			Velocity: sm.state.Velocity,
			Field:    field,
		}
		result.Samples = append(result.Samples, sample)

		for _, m := range sm.metrics {
			m.Observe(sm.state, field, t)
		}
		for _, o := range sm.observers {
			o.OnFrame(sample)
		}
	}

	for _, m := range sm.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
