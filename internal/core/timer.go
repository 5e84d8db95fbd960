package core

import "time"

// FrameTimer keeps an exponentially smoothed average of frame durations.
type FrameTimer struct {
	weight  float64
	average time.Duration
	samples int
	started time.Time
}

// NewFrameTimer constructs a FrameTimer. weight is the share given to each
// new sample and falls back to 0.1 outside (0, 1].
func NewFrameTimer(weight float64) *FrameTimer {
	if weight <= 0 || weight > 1 {
		weight = 0.1
	}
	return &FrameTimer{weight: weight}
}

// Start marks the beginning of a frame.
func (t *FrameTimer) Start() {
	t.started = time.Now()
}

// Stop records the time elapsed since Start and returns it.
func (t *FrameTimer) Stop() time.Duration {
	if t.started.IsZero() {
		return 0
	}
	d := time.Since(t.started)
	t.started = time.Time{}
	t.Observe(d)
	return d
}

// Observe folds a duration into the average. The first sample seeds it.
func (t *FrameTimer) Observe(d time.Duration) {
	t.samples++
	if t.samples == 1 {
		t.average = d
		return
	}
	t.average = time.Duration(float64(t.average)*(1-t.weight) + float64(d)*t.weight)
}

// Average returns the smoothed duration.
func (t *FrameTimer) Average() time.Duration { return t.average }

// Samples returns how many durations have been observed.
func (t *FrameTimer) Samples() int { return t.samples }
