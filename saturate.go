package overlay

import "math"

// satAdd adds two samples of the same representation. Integer sums are
// computed in a wider intermediate (bound checks for int64) and clamped
// to the width's math.MinIntN/math.MaxIntN. Float sums fall through to
// native addition with no clamping; overflow follows IEEE semantics.
func satAdd[T Sample](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		s := int16(av) + int16(any(b).(int8))
		if s > math.MaxInt8 {
			s = math.MaxInt8
		} else if s < math.MinInt8 {
			s = math.MinInt8
		}
		return T(s)
	case int16:
		s := int32(av) + int32(any(b).(int16))
		if s > math.MaxInt16 {
			s = math.MaxInt16
		} else if s < math.MinInt16 {
			s = math.MinInt16
		}
		return T(s)
	case int32:
		s := int64(av) + int64(any(b).(int32))
		if s > math.MaxInt32 {
			s = math.MaxInt32
		} else if s < math.MinInt32 {
			s = math.MinInt32
		}
		return T(s)
	case int64:
		return T(satAdd64(av, any(b).(int64)))
	default:
		// float32, float64: native addition, no clamping.
		return a + b
	}
}

// satAdd64 has no wider intermediate to lean on, so it detects overflow
// against the bound before adding.
func satAdd64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}
