// Package history keeps a fixed-capacity rolling buffer of recent
// simulation samples for the graph and readout panes.
package history

// Sample is one recorded instant of the drop.
type Sample struct {
	Time     float64
	Position float64
	Velocity float64
	Field    float64
}

// Buffer is a ring of the most recent samples. Zero capacity is
// normalized to 1 so Push never panics.
type Buffer struct {
	samples []Sample
	head    int
	count   int
}

func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{samples: make([]Sample, capacity)}
}

// Push appends a sample, evicting the oldest once full.
func (b *Buffer) Push(s Sample) {
	b.samples[b.head] = s
	b.head = (b.head + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
}

// Len returns the number of stored samples.
func (b *Buffer) Len() int { return b.count }

// Clear discards all samples.
func (b *Buffer) Clear() {
	b.head = 0
	b.count = 0
}

// Samples returns the stored samples oldest-first.
func (b *Buffer) Samples() []Sample {
	out := make([]Sample, 0, b.count)
	start := b.head - b.count
	if start < 0 {
		start += len(b.samples)
	}
	for i := 0; i < b.count; i++ {
		out = append(out, b.samples[(start+i)%len(b.samples)])
	}
	return out
}

// Positions returns the stored positions oldest-first, for plotting.
func (b *Buffer) Positions() []float64 {
	s := b.Samples()
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Position
	}
	return out
}

// Velocities returns the stored velocities oldest-first.
func (b *Buffer) Velocities() []float64 {
	s := b.Samples()
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Velocity
	}
	return out
}
