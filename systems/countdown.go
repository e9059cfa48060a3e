package systems

import "github.com/pthm-cable/peeps/store"

// Timer is a one-shot countdown advanced by tick delta.
type Timer struct {
	Duration float32
	Elapsed  float32
}

// NewTimer returns a timer that finishes after d seconds.
func NewTimer(d float32) Timer {
	return Timer{Duration: d}
}

// Advance adds dt and reports whether the timer has finished.
func (t *Timer) Advance(dt float32) bool {
	if !t.Finished() {
		t.Elapsed += dt
	}
	return t.Finished()
}

// Finished reports whether the elapsed time has reached the duration.
func (t *Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining returns the seconds left, never negative.
func (t *Timer) Remaining() float32 {
	if t.Finished() {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// CountdownSystem advances the splash timer.
type CountdownSystem struct {
	Timer *Timer
}

// Update runs the countdown system.
func (c CountdownSystem) Update(_ *store.Store, t Tick) error {
	if c.Timer != nil {
		c.Timer.Advance(t.DT)
	}
	return nil
}
