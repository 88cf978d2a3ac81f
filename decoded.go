// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arbfloat

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Kind classifies a decoded value.
type Kind uint8

const (
	// Regular is a finite nonzero value, normal or subnormal.
	Regular Kind = iota
	// Zero is a positive or negative zero.
	Zero
	// Inf is a positive or negative infinity.
	Inf
	// NaN is a not-a-number pattern.
	NaN
)

var kindNames = [...]string{"regular", "zero", "inf", "nan"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Decoded is the result of decoding a bit pattern: a kind tag, a sign flag,
// and a significand magnitude scaled by a power of two.
// A Regular value equals ±mant·2^exp, where mant is odd: trailing zero bits
// are folded into the exponent during construction. The sign is kept
// separately from the magnitude, so negative zeros survive decoding.
// The exponent is meaningful only for Regular values.
// A Decoded is immutable after construction.
type Decoded struct {
	kind Kind
	neg  bool
	exp  int64
	mant *big.Int
}

// newDecoded canonicalizes Regular values by moving trailing zero bits from
// the significand into the exponent. Other kinds pass through unchanged.
// A zero significand is left alone, it has no trailing-zero count.
func newDecoded(kind Kind, neg bool, mant *big.Int, exp int64) Decoded {
	if kind == Regular && mant.Sign() != 0 {
		if tz := mant.TrailingZeroBits(); tz > 0 {
			mant.Rsh(mant, tz)
			exp += int64(tz)
		}
	}
	return Decoded{kind: kind, neg: neg, exp: exp, mant: mant}
}

// Kind returns the classification tag.
func (d Decoded) Kind() Kind {
	return d.kind
}

// Neg reports whether the sign bit was set.
// The sign is recorded for all kinds, including zeros, infinities and NaNs.
func (d Decoded) Neg() bool {
	return d.neg
}

// Exp returns the binary exponent.
// It is meaningful only for Regular values.
func (d Decoded) Exp() int64 {
	return d.exp
}

// Mant returns a copy of the significand magnitude.
// For Regular values it is odd, for all other kinds it is zero.
func (d Decoded) Mant() *big.Int {
	if d.mant == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(d.mant)
}

// Significand returns the signed significand, Mant() negated if the sign
// bit was set. A big integer cannot represent a negative zero, so for
// negative zeros the sign is visible only through Neg.
func (d Decoded) Significand() *big.Int {
	m := d.Mant()
	if d.neg {
		m.Neg(m)
	}
	return m
}

// Rat returns the exact value ±mant·2^exp as a rational number.
// ok is false for infinities and NaNs, which have no finite value.
func (d Decoded) Rat() (r *big.Rat, ok bool) {
	if d.kind == Inf || d.kind == NaN {
		return nil, false
	}
	num := d.Significand()
	r = new(big.Rat)
	if d.exp >= 0 {
		r.SetInt(num.Lsh(num, uint(d.exp)))
	} else {
		r.SetFrac(num, new(big.Int).Lsh(big.NewInt(1), uint(-d.exp)))
	}
	return r, true
}

// String returns a debug representation:
// "±mant*2^exp" for Regular values, "0" or "-0", "+Inf" or "-Inf", "NaN".
func (d Decoded) String() string {
	var sign string
	if d.neg {
		sign = "-"
	}
	switch d.kind {
	case Zero:
		return sign + "0"
	case Inf:
		if d.neg {
			return "-Inf"
		}
		return "+Inf"
	case NaN:
		return "NaN"
	}
	return fmt.Sprintf("%s%s*2^%d", sign, d.mant.String(), d.exp)
}

// GoString returns debug string representation.
func (d Decoded) GoString() string {
	return d.String() + fmt.Sprintf(" {%v, %v, %v, %v}", d.kind, d.neg, d.mant, d.exp)
}

type decodedJSON struct {
	K   string   `json:"k"`
	Neg bool     `json:"neg"`
	M   *big.Int `json:"m"`
	E   int64    `json:"e"`
}

// MarshalJSON marshals the value as an object with kind, sign, significand
// magnitude and exponent, like `{"k":"regular","neg":false,"m":3,"e":-1}`.
func (d Decoded) MarshalJSON() ([]byte, error) {
	m := d.mant
	if m == nil {
		m = new(big.Int)
	}
	return json.Marshal(decodedJSON{K: d.kind.String(), Neg: d.neg, M: m, E: d.exp})
}

// UnmarshalJSON unmarshals the object form produced by MarshalJSON.
// Regular values are re-normalized to the canonical odd-significand form.
func (d *Decoded) UnmarshalJSON(data []byte) error {
	var dj decodedJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	var kind Kind
	switch dj.K {
	case "regular":
		kind = Regular
	case "zero":
		kind = Zero
	case "inf":
		kind = Inf
	case "nan":
		kind = NaN
	default:
		return fmt.Errorf("unknown kind %q", dj.K)
	}
	m := dj.M
	if m == nil {
		m = new(big.Int)
	}
	if m.Sign() < 0 {
		return fmt.Errorf("negative significand magnitude")
	}
	*d = newDecoded(kind, dj.Neg, m, dj.E)
	return nil
}
