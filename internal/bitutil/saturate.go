// Package bitutil holds the small saturating-arithmetic primitives shared
// by ratematch and decoder. It is grounded on the
// teacher's own saturating-clamp style in fastpfor.go (selectBitWidth's
// mask construction, applyExceptions' shift-and-OR reinsertion) generalized
// from FastPFOR's bit-packing domain to signed fixed-point LLR arithmetic.
package bitutil

// SatAdd8 adds two signed 8-bit values, saturating to [-127, 127]. NR LDPC's
// HARQ accumulator (spec.md §3) saturates symmetrically rather than at the
// int8 minimum of -128, so both bounds are ±127.
func SatAdd8(a, b int8) int8 {
	return clamp8(int32(a) + int32(b))
}

func clamp8(v int32) int8 {
	switch {
	case v > 127:
		return 127
	case v < -127:
		return -127
	default:
		return int8(v)
	}
}

// SatAdd16 adds two signed 16-bit values, saturating to the full int16
// range. Used throughout LayerKernel for variable-node updates.
func SatAdd16(a, b int16) int16 {
	return clamp16(int32(a) + int32(b))
}

// SatSub16 subtracts b from a, saturating to the full int16 range.
func SatSub16(a, b int16) int16 {
	return clamp16(int32(a) - int32(b))
}

func clamp16(v int32) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}

// Abs16 returns the saturating absolute value of v: Abs16(math.MinInt16)
// maps to math.MaxInt16 rather than overflowing, per spec.md §4.4's
// numerical semantics.
func Abs16(v int16) int16 {
	if v == -32768 {
		return 32767
	}
	if v < 0 {
		return -v
	}
	return v
}

// SatSubUnsigned16 subtracts an unsigned attenuation from a non-negative
// magnitude, saturating at zero from below rather than wrapping. Used to
// apply the min-sum offset beta to a check-node minimum.
func SatSubUnsigned16(v, delta uint16) uint16 {
	if delta >= v {
		return 0
	}
	return v - delta
}
