package gamemath

import (
	"math"
	"math/rand"
)

// HorizontalVelocity returns the horizontal speed for the current input.
// There is no acceleration curve: the result is always -speed, speed or 0.
// Left is checked first, matching the key order of the movement bindings.
func HorizontalVelocity(left, right bool, speed float64) float64 {
	if left {
		return -speed
	}
	if right {
		return speed
	}
	return 0
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandRange draws an integer uniformly from the inclusive range [lo, hi].
// Callers guarantee lo <= hi.
func RandRange(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		panic("gamemath: RandRange with inverted bounds")
	}
	return lo + r.Intn(hi-lo+1)
}

// BobOffset returns a sawtooth offset in [-amplitude, amplitude) driven by elapsed
// milliseconds. period is the number of milliseconds per half cycle.
func BobOffset(elapsedMs, period, amplitude, phase float64) float64 {
	t := elapsedMs/period + phase
	return amplitude * (math.Mod(t, 2) - 1)
}
