package arbfloat

import (
	"math"
	"math/big"
)

// Decode interprets raw as a bit pattern laid out per f and returns its
// arbitrary-precision decomposition. Decoding is total: every pattern of
// Bits() width maps to exactly one Decoded. Bits above the sign position
// are ignored.
func (f Format) Decode(raw uint64) Decoded {
	frac := raw & f.fracMask()
	biasedExp := raw >> f.expShift() & f.expMask()
	neg := raw>>f.signShift()&1 != 0

	// The fraction field is interpreted as an integer rather than as a
	// fixed-point number in [1, 2). That multiplies the significand by
	// 2^(precision-1), so the same amount is subtracted from the exponent
	// to compensate.
	exp := int64(biasedExp) - (f.Bias() + int64(f.Precision()) - 1)
	switch {
	case biasedExp == f.expMask():
		if frac == 0 {
			return newDecoded(Inf, neg, new(big.Int), 0)
		}
		return newDecoded(NaN, neg, new(big.Int), 0)
	case biasedExp == 0:
		if frac == 0 {
			return newDecoded(Zero, neg, new(big.Int), 0)
		}
		// Subnormals have no implicit integer bit and are not subject
		// to the precision-1 shift above, hence the +1.
		return newDecoded(Regular, neg, new(big.Int).SetUint64(frac), exp+1)
	default:
		return newDecoded(Regular, neg, new(big.Int).SetUint64(frac|f.integerBit()), exp)
	}
}

// DecodeFloat32 decodes the bit pattern of v in the Binary32 layout.
func DecodeFloat32(v float32) Decoded {
	return Binary32.Decode(uint64(math.Float32bits(v)))
}

// DecodeFloat64 decodes the bit pattern of v in the Binary64 layout.
func DecodeFloat64(v float64) Decoded {
	return Binary64.Decode(math.Float64bits(v))
}
