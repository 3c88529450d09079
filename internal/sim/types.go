package sim

import "github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"

// Sample is one recorded frame of the simulation.
type Sample struct {
	Time     float64 // s
	Position float64 // m above the lower plate
	Velocity float64 // m/s
	Field    float64 // V/m used during the frame
}

// Metric accumulates a summary statistic over a run.
type Metric interface {
	Name() string
	Observe(s *drop.State, field, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every recorded frame.
type Observer interface {
	OnFrame(s Sample)
}

// Config controls a headless run.
type Config struct {
	Duration  float64 // s of simulated time
	FrameRate float64 // frames per second fed to the driver
	Seed      int64
}

// DefaultConfig runs 10 simulated seconds at 60 fps.
func DefaultConfig() Config {
	return Config{Duration: 10.0, FrameRate: 60.0, Seed: 1}
}

// Result holds the recorded run.
type Result struct {
	Samples []Sample
	Metrics map[string]float64
}
