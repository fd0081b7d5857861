package overlay

import (
	"github.com/cwbudde/algo-vecmath"
)

// Sample is the set of sample representations the engine operates on.
// The constraint is exact (no underlying-type approximation) so the
// saturating-add table can dispatch on the concrete type.
type Sample interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Overlay mixes src onto dst starting at the sample index derived from
// startTime and sampleRate (see StartIndex for the rounding rule). It
// returns the resulting slice, which must replace the caller's dst, as
// with append. src is never modified.
//
// Panics if startTime is negative or sampleRate is zero.
func Overlay[T Sample](dst, src []T, startTime float64, sampleRate uint32, add bool) []T {
	return OverlayAt(dst, src, StartIndex(startTime, sampleRate), add)
}

// OverlayAt mixes src onto dst starting at the given sample index.
//
// If start+len(src) exceeds len(dst), dst is grown with zero-valued
// samples to exactly that length before any combining. A start beyond the
// current end leaves a zero-filled gap; src is never spliced onto the old
// tail. Growth happens in both combine modes.
//
// With add set, overlapping samples combine by saturating addition for
// the integer representations and plain addition for the float ones.
// Otherwise src overwrites the destination samples.
//
// Panics if start is negative.
func OverlayAt[T Sample](dst, src []T, start int, add bool) []T {
	if start < 0 {
		panic("overlay: negative start index")
	}
	if len(src) == 0 {
		return dst
	}
	if required := start + len(src); required > len(dst) {
		dst = grow(dst, required)
	}
	region := dst[start : start+len(src)]
	if !add {
		copy(region, src)
		return dst
	}
	if r, ok := any(region).([]float64); ok {
		vecmath.AddBlockInPlace(r, any(src).([]float64))
		return dst
	}
	for i, v := range src {
		region[i] = satAdd(region[i], v)
	}
	return dst
}

// grow extends s to length n with zero samples, reusing capacity when
// available.
func grow[T Sample](s []T, n int) []T {
	if cap(s) >= n {
		t := s[:n]
		clear(t[len(s):])
		return t
	}
	t := make([]T, n)
	copy(t, s)
	return t
}
