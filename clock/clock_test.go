package clock

import (
	"testing"
	"time"
)

func TestManualIsMonotonic(t *testing.T) {
	c := NewManual()
	c.Advance(100 * time.Millisecond)
	c.Advance(-time.Second)
	if got := c.Elapsed(); got != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 100ms", got)
	}

	c.Tick(60)
	if got := c.Elapsed(); got != 100*time.Millisecond+time.Second/60 {
		t.Errorf("Elapsed() after Tick = %v", got)
	}
}

func TestMonotonicNeverDecreases(t *testing.T) {
	c := NewMonotonic()
	prev := c.Elapsed()
	for i := 0; i < 1000; i++ {
		now := c.Elapsed()
		if now < prev {
			t.Fatalf("clock went backwards: %v -> %v", prev, now)
		}
		prev = now
	}
}
