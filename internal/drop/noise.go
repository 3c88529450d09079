package drop

import (
	"math"
	"math/rand"
)

// NoiseSource yields one zero-mean unit-variance sample per sub-step.
// It is injected rather than ambient so runs can be seeded for tests.
type NoiseSource interface {
	Sample() float64
}

// GaussianNoise draws standard-normal samples from a seeded generator
// via Box-Muller, producing two per pair of uniforms.
type GaussianNoise struct {
	rng   *rand.Rand
	spare float64
	has   bool
}

// NewGaussianNoise creates a seeded Gaussian source.
func NewGaussianNoise(seed int64) *GaussianNoise {
	return &GaussianNoise{rng: rand.New(rand.NewSource(seed))}
}

func (g *GaussianNoise) Sample() float64 {
	if g.has {
		g.has = false
		return g.spare
	}
	var u, v, s float64
	for {
		u = 2*g.rng.Float64() - 1
		v = 2*g.rng.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	m := math.Sqrt(-2 * math.Log(s) / s)
	g.spare = v * m
	g.has = true
	return u * m
}

// ZeroNoise disables thermal forcing; deterministic runs and the
// terminal-velocity tests use it.
type ZeroNoise struct{}

func (ZeroNoise) Sample() float64 { return 0 }
