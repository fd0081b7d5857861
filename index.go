package overlay

import (
	"math"
	"time"
)

// StartIndex converts a start time in seconds to a destination sample
// index: round(startTime * sampleRate), to nearest, ties away from zero.
// This is the exact computation Overlay uses, so callers aligning other
// material against overlaid output observe the same rule.
//
// Panics if startTime is negative (NaN included) or sampleRate is zero.
func StartIndex(startTime float64, sampleRate uint32) int {
	if !(startTime >= 0) {
		panic("overlay: negative start time")
	}
	if sampleRate == 0 {
		panic("overlay: zero sample rate")
	}
	return int(math.Round(startTime * float64(sampleRate)))
}

// DurationIndex converts a start offset to a sample index using integer
// arithmetic, so nanosecond-precise offsets do not pick up float error.
// Rounding matches StartIndex: to nearest, ties away from zero.
//
// Panics if at is negative or sampleRate is zero.
func DurationIndex(at time.Duration, sampleRate uint32) int {
	if at < 0 {
		panic("overlay: negative start time")
	}
	if sampleRate == 0 {
		panic("overlay: zero sample rate")
	}
	n := at * time.Duration(sampleRate)
	return int((n + time.Second/2) / time.Second)
}
