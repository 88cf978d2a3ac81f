// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arbfloat decodes fixed-width binary floating-point bit patterns,
// laid out in the IEEE-754 convention, into an arbitrary-precision
// sign/exponent/significand form.
// Besides the standard binary16/32/64 layouts, ad-hoc formats with small
// field widths can be decoded, down to a 1-bit fraction and a 1-bit exponent.
package arbfloat

import (
	"fmt"

	mu "github.com/avdva/arbfloat/internal/mathutil"
)

var (
	errFormat = fmt.Errorf("invalid format")

	// Binary16 is the standard half-precision layout.
	Binary16 = Format{frac: 10, exp: 5}
	// Binary32 is the standard single-precision layout.
	Binary32 = Format{frac: 23, exp: 8}
	// Binary64 is the standard double-precision layout.
	Binary64 = Format{frac: 52, exp: 11}
)

// Format describes a floating-point bit layout inside a uint64.
// The least significant bits hold the fraction field, followed by the
// biased exponent field, followed by a single sign bit:
//   63       exp+frac    frac                  0
//   _________|___________|_____________________
//            seeeeeeeeeeefffffffffffffffffffffff
// All derived quantities are pure functions of the two field widths,
// and a Format is immutable after construction.
type Format struct {
	frac, exp uint8
}

// New returns a Format with the given field widths.
// Returns an error if expBits is less than 1, fracBits is negative,
// or the two fields plus the sign bit do not fit into 64 bits.
func New(fracBits, expBits int) (Format, error) {
	if fracBits < 0 || expBits < 1 || fracBits+expBits+1 > mu.StorageBits {
		return Format{}, errFormat
	}
	return Format{frac: uint8(fracBits), exp: uint8(expBits)}, nil
}

// MustNew is like New, but panics on invalid widths.
func MustNew(fracBits, expBits int) Format {
	f, err := New(fracBits, expBits)
	if err != nil {
		panic(err)
	}
	return f
}

// FracBits returns the width of the fraction field.
func (f Format) FracBits() int {
	return int(f.frac)
}

// ExpBits returns the width of the biased-exponent field.
func (f Format) ExpBits() int {
	return int(f.exp)
}

// Bits returns the total number of bits a pattern occupies,
// including the sign bit.
func (f Format) Bits() int {
	return int(f.frac) + int(f.exp) + 1
}

// Precision returns the significand precision in bits,
// counting the implicit integer bit.
func (f Format) Precision() int {
	return int(f.frac) + 1
}

// Bias returns the exponent bias, 2^(expBits-1) - 1.
func (f Format) Bias() int64 {
	return int64(1)<<(f.exp-1) - 1
}

// String returns the layout as "binary(fracBits,expBits)".
func (f Format) String() string {
	return fmt.Sprintf("binary(%d,%d)", f.frac, f.exp)
}

func (f Format) fracMask() uint64 {
	return mu.Mask(int(f.frac))
}

func (f Format) expMask() uint64 {
	return mu.Mask(int(f.exp))
}

func (f Format) expShift() int {
	return int(f.frac)
}

func (f Format) signShift() int {
	return int(f.frac) + int(f.exp)
}

// integerBit is the implicit leading one of a normal significand.
func (f Format) integerBit() uint64 {
	return 1 << f.frac
}
