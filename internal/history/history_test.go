package history_test

import (
	"testing"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/history"
)

func TestPushAndOrder(t *testing.T) {
	b := history.NewBuffer(4)
	for i := 0; i < 3; i++ {
		b.Push(history.Sample{Time: float64(i)})
	}

	if b.Len() != 3 {
		t.Fatalf("len %d, want 3", b.Len())
	}
	got := b.Samples()
	for i, s := range got {
		if s.Time != float64(i) {
			t.Errorf("sample %d has time %g, want %d", i, s.Time, i)
		}
	}
}

func TestEvictsOldestWhenFull(t *testing.T) {
	b := history.NewBuffer(3)
	for i := 0; i < 5; i++ {
		b.Push(history.Sample{Time: float64(i), Position: float64(i) * 10})
	}

	if b.Len() != 3 {
		t.Fatalf("len %d, want 3", b.Len())
	}
	got := b.Samples()
	want := []float64{2, 3, 4}
	for i, s := range got {
		if s.Time != want[i] {
			t.Errorf("sample %d has time %g, want %g", i, s.Time, want[i])
		}
	}

	pos := b.Positions()
	if len(pos) != 3 || pos[0] != 20 || pos[2] != 40 {
		t.Errorf("positions %v, want [20 30 40]", pos)
	}
}

func TestClear(t *testing.T) {
	b := history.NewBuffer(3)
	b.Push(history.Sample{Time: 1})
	b.Clear()
	if b.Len() != 0 || len(b.Samples()) != 0 {
		t.Error("clear should empty the buffer")
	}
	b.Push(history.Sample{Time: 2})
	if b.Len() != 1 || b.Samples()[0].Time != 2 {
		t.Error("buffer unusable after clear")
	}
}

func TestZeroCapacityNormalized(t *testing.T) {
	b := history.NewBuffer(0)
	b.Push(history.Sample{Velocity: 1})
	b.Push(history.Sample{Velocity: 2})
	if b.Len() != 1 {
		t.Fatalf("len %d, want 1", b.Len())
	}
	if v := b.Velocities(); len(v) != 1 || v[0] != 2 {
		t.Errorf("velocities %v, want [2]", v)
	}
}
