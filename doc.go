// Package overlay mixes one single-channel sample buffer onto another at a
// caller-specified time offset, growing the destination as needed.
//
// The engine operates on flat, single-channel sample slices of a uniform
// numeric representation (int8, int16, int32, int64, float32, or float64)
// and a uniform sample rate. Decoding, playback, channel interleaving, and
// resampling are left to the caller; for multi-channel audio, run one
// overlay per channel.
//
// Overlapping samples either replace the destination or combine by
// addition. Integer additions saturate at the representation's bounds;
// float additions are native and unclamped. Destination slots created by
// growth are zero before any combination is applied.
//
// Growth follows the append idiom: the possibly reallocated destination is
// returned and must replace the caller's slice.
//
//	dst := []int16{10, 20}
//	src := []int16{1, 2, 3}
//	dst = overlay.Overlay(dst, src, 0, 44100, true)
package overlay
