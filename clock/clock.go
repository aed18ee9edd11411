// Package clock supplies the monotonic tick clock that drives time-based animation.
// Game logic only relies on Elapsed never decreasing.
package clock

import "time"

// Clock reports the time elapsed since the clock started.
type Clock interface {
	Elapsed() time.Duration
}

// Monotonic reads the process monotonic clock.
type Monotonic struct {
	start time.Time
}

// NewMonotonic starts a monotonic clock at the current instant.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Elapsed uses the monotonic reading carried by time.Time, so wall clock changes have no effect.
func (m *Monotonic) Elapsed() time.Duration {
	return time.Since(m.start)
}

// Manual is a controllable clock for tests and headless runs. It is not safe for
// concurrent use; the game loop is single-threaded.
type Manual struct {
	elapsed time.Duration
}

// NewManual creates a manual clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Elapsed() time.Duration {
	return m.elapsed
}

// Advance moves the clock forward. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.elapsed += d
	}
}

// Tick advances the clock by one tick at the given rate.
func (m *Manual) Tick(tickRate int) {
	if tickRate > 0 {
		m.Advance(time.Second / time.Duration(tickRate))
	}
}
