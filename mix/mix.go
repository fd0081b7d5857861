package mix

import (
	"math"

	"github.com/cwbudde/algo-overlay"
)

// Clip is a sample buffer scheduled at a start time on a timeline.
type Clip[T overlay.Sample] struct {
	Samples []T
	Start   float64 // seconds relative to the timeline origin
}

// Timeline layers clips onto one destination buffer at a fixed sample
// rate. The zero value is not usable; construct with New.
type Timeline[T overlay.Sample] struct {
	sampleRate uint32
	clips      []Clip[T]
}

// New creates a timeline at the given sample rate.
func New[T overlay.Sample](sampleRate uint32) (*Timeline[T], error) {
	if sampleRate == 0 {
		return nil, ErrZeroSampleRate
	}
	return &Timeline[T]{sampleRate: sampleRate}, nil
}

// SampleRate returns the timeline's sample rate.
func (t *Timeline[T]) SampleRate() uint32 {
	return t.sampleRate
}

// Add schedules samples at startTime seconds. The slice is referenced,
// not copied; the caller must not mutate it before rendering. Empty
// clips are accepted; they span no samples, so they contribute nothing
// to Len or to the rendered output.
func (t *Timeline[T]) Add(samples []T, startTime float64) error {
	if startTime < 0 || math.IsNaN(startTime) {
		return ErrNegativeStart
	}
	t.clips = append(t.clips, Clip[T]{Samples: samples, Start: startTime})
	return nil
}

// Clips returns the scheduled clips in insertion order. The returned
// slice is the timeline's own; treat it as read-only.
func (t *Timeline[T]) Clips() []Clip[T] {
	return t.clips
}

// Len returns the rendered length in samples: the largest end index over
// all non-empty clips, using the overlay engine's index rounding. An
// empty clip spans no samples and does not extend the timeline, matching
// the overlay engine's no-op on an empty source.
func (t *Timeline[T]) Len() int {
	n := 0
	for _, c := range t.clips {
		if len(c.Samples) == 0 {
			continue
		}
		if end := overlay.StartIndex(c.Start, t.sampleRate) + len(c.Samples); end > n {
			n = end
		}
	}
	return n
}

// Duration returns the rendered length in seconds.
func (t *Timeline[T]) Duration() float64 {
	return float64(t.Len()) / float64(t.sampleRate)
}

// Render mixes all clips into a newly allocated buffer of exactly Len()
// samples. Clips combine by saturating addition in insertion order; with
// integer samples the result is order-dependent once the clamp engages.
func (t *Timeline[T]) Render() []T {
	return t.RenderInto(make([]T, 0, t.Len()))
}

// RenderInto mixes all clips onto dst, growing it as needed, and returns
// the resulting slice. Existing samples in dst are kept and mixed under
// the clips, so a pre-rendered bed can be reused.
func (t *Timeline[T]) RenderInto(dst []T) []T {
	for _, c := range t.clips {
		dst = overlay.Overlay(dst, c.Samples, c.Start, t.sampleRate, true)
	}
	return dst
}
