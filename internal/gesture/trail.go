package gesture

import "time"

// Sample is one fingertip position observed at a point in time.
type Sample struct {
	X float64
	Y float64
	T time.Time
}

// Trail is a bounded FIFO history of recent index-fingertip positions.
// It is never cleared; old samples fall out through capacity eviction, so a
// sudden direction reversal takes up to a full buffer to show in the
// displacement. That latency is the intended smoothing.
type Trail struct {
	samples []Sample
	cap     int
}

// NewTrail creates a trail with the given capacity. Capacities below two
// would make Displacement permanently undefined, so they are raised to two.
func NewTrail(capacity int) *Trail {
	if capacity < 2 {
		capacity = 2
	}
	return &Trail{
		samples: make([]Sample, 0, capacity),
		cap:     capacity,
	}
}

// Push appends a sample, evicting the oldest when the trail is full.
func (t *Trail) Push(x, y float64, at time.Time) {
	if len(t.samples) >= t.cap {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:t.cap-1]
	}
	t.samples = append(t.samples, Sample{X: x, Y: y, T: at})
}

// Len returns the number of retained samples.
func (t *Trail) Len() int {
	return len(t.samples)
}

// Displacement returns the net movement between the oldest and newest
// retained samples. ok is false while fewer than two samples exist; callers
// must then skip swipe and scroll classification.
func (t *Trail) Displacement() (dx, dy float64, ok bool) {
	if len(t.samples) < 2 {
		return 0, 0, false
	}
	oldest := t.samples[0]
	newest := t.samples[len(t.samples)-1]
	return newest.X - oldest.X, newest.Y - oldest.Y, true
}
