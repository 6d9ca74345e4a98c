// Package series provides the bounded rolling time series backing the
// dashboard chart. One buffer exists per tracked metric; insertion order is
// time order and the oldest sample is evicted on overflow.
package series

// Capacity is the number of samples retained per metric. At one sample per
// 2 s poll tick this covers the last 100 seconds.
const Capacity = 50

// Buffer is a fixed-capacity FIFO of chart samples in the 0–100 range.
// Push is the only mutation; values are never edited in place.
type Buffer struct {
	data []float64
	cap  int
}

// NewBuffer returns an empty buffer with the given capacity.
// Non-positive capacities fall back to the default Capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Buffer{
		data: make([]float64, 0, capacity),
		cap:  capacity,
	}
}

// Push appends a sample, evicting the oldest when the buffer is full.
func (b *Buffer) Push(v float64) {
	if len(b.data) == b.cap {
		copy(b.data, b.data[1:])
		b.data[len(b.data)-1] = v
		return
	}
	b.data = append(b.data, v)
}

// Values returns the retained samples, oldest first. The returned slice is a
// copy; callers may hold it across later pushes.
func (b *Buffer) Values() []float64 {
	out := make([]float64, len(b.data))
	copy(out, b.data)
	return out
}

// Len returns the number of retained samples.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int { return b.cap }

// Last returns the most recent sample, or 0 and false when empty.
func (b *Buffer) Last() (float64, bool) {
	if len(b.data) == 0 {
		return 0, false
	}
	return b.data[len(b.data)-1], true
}

// AnyPositive reports whether any retained sample is strictly positive.
// The temperature series records sentinel 0 for ticks with no reading, so
// this is the gate that decides whether the temperature line is drawn at all.
func (b *Buffer) AnyPositive() bool {
	for _, v := range b.data {
		if v > 0 {
			return true
		}
	}
	return false
}

// Set bundles the three per-metric buffers the dashboard tracks.
type Set struct {
	CPU         *Buffer
	Memory      *Buffer
	Temperature *Buffer
}

// NewSet returns a Set with three empty buffers of the default capacity.
func NewSet() *Set {
	return &Set{
		CPU:         NewBuffer(Capacity),
		Memory:      NewBuffer(Capacity),
		Temperature: NewBuffer(Capacity),
	}
}
