package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"math"
	"strconv"
)

// FromFloat64 builds a Decimal by formatting f as the shortest decimal
// string that round-trips back to f, then feeding that string through the
// same parser String input uses. This guarantees FromFloat64(f) equals
// Parse(fmt(f)) by construction, rather than maintaining a second,
// independent binary-to-decimal conversion (spec.md §4.6 "from float").
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, newError(InvalidArgument, "%v is not representable as a decimal", f)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// FromFloat32 is FromFloat64 restricted to float32 precision.
func FromFloat32(f float32) (Decimal, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Decimal{}, newError(InvalidArgument, "%v is not representable as a decimal", f)
	}
	return Parse(strconv.FormatFloat(float64(f), 'f', -1, 32))
}

// Float64 converts d to the nearest float64, dividing the coefficient by
// 10^scale in chunks of at most 18 digits at a time to avoid the
// intermediate overflow a single pow(10, scale) division would risk for
// large scales (spec.md §4.6 "to float").
func (d Decimal) Float64() (float64, error) {
	if d.isZero() {
		return 0, nil
	}
	v := coefficientAsFloat64(d)
	if d.neg {
		v = -v
	}

	scale := int(d.scale)
	for scale > 0 {
		chunk := scale
		if chunk > 18 {
			chunk = 18
		}
		v /= float64(pow10Small[chunk])
		scale -= chunk
	}
	if math.IsInf(v, 0) {
		return 0, newError(ValueOutOfRange, "value overflows float64")
	}
	return v, nil
}

// coefficientAsFloat64 widens d's unsigned coefficient to a float64
// regardless of tier. Big-tier coefficients are rebuilt digit by digit
// since math/big is not part of this package's hot-path vocabulary.
func coefficientAsFloat64(d Decimal) float64 {
	switch d.t {
	case tierSmall:
		return float64(d.sm)
	case tierMid:
		return float64(d.md.mag.Hi)*18446744073709551616.0 + float64(d.md.mag.Lo)
	default:
		v := 0.0
		for _, digit := range d.bg.digits() {
			v = v*10 + float64(digit-'0')
		}
		return v
	}
}
