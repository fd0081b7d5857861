package overlay

import (
	"strconv"
	"testing"
)

func benchSamples[T Sample](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i % 64)
	}
	return out
}

func BenchmarkOverlayAddInt16(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		src := benchSamples[int16](n)
		dst := benchSamples[int16](n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 2))

			for range b.N {
				OverlayAt(dst, src, 0, true)
			}
		})
	}
}

func BenchmarkOverlayAddFloat64(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		src := benchSamples[float64](n)
		dst := benchSamples[float64](n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				OverlayAt(dst, src, 0, true)
			}
		})
	}
}

func BenchmarkOverlayReplace(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		src := benchSamples[int16](n)
		dst := benchSamples[int16](n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 2))

			for range b.N {
				OverlayAt(dst, src, 0, false)
			}
		})
	}
}

func BenchmarkOverlayGrow(b *testing.B) {
	const n = 16384
	src := benchSamples[int16](n)
	b.ReportAllocs()
	b.SetBytes(int64(n * 2))

	for range b.N {
		dst := make([]int16, 0, n/2)
		OverlayAt(dst, src, n/4, true)
	}
}
