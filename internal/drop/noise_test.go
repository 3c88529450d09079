package drop_test

import (
	"math"
	"testing"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

func TestGaussianNoiseMoments(t *testing.T) {
	g := drop.NewGaussianNoise(42)

	const n = 50000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := g.Sample()
		sum += x
		sumSq += x * x
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.05 {
		t.Errorf("mean %g, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Errorf("variance %g, want ~1", variance)
	}
}

func TestGaussianNoiseIsSeeded(t *testing.T) {
	a := drop.NewGaussianNoise(9)
	b := drop.NewGaussianNoise(9)
	for i := 0; i < 100; i++ {
		if a.Sample() != b.Sample() {
			t.Fatalf("sample %d diverged between equal seeds", i)
		}
	}
}

func TestZeroNoise(t *testing.T) {
	if (drop.ZeroNoise{}).Sample() != 0 {
		t.Error("ZeroNoise must sample 0")
	}
}
