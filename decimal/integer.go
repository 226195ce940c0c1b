package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"

	"github.com/tieredprecision/decimal/decimal/one28"
)

// NewFromInt64 builds a Decimal directly from a signed 64-bit integer at
// the given scale, with no string parsing involved (spec.md §4.6 "from
// integer"). scale must be in [0, MAX_SCALE].
func NewFromInt64(v int64, scale int) (Decimal, error) {
	if scale < 0 || scale > maxScale {
		return Decimal{}, newError(ScaleOverflow, "scale %d out of range", scale)
	}
	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}
	return decimalFromSmall(neg, mag, int8(scale)), nil
}

// NewFromUint64 builds a Decimal from an unsigned 64-bit integer. The Small
// tier's magnitude holds up to 1<<63, so larger values are stored in the
// Mid tier.
func NewFromUint64(v uint64, scale int) (Decimal, error) {
	if scale < 0 || scale > maxScale {
		return Decimal{}, newError(ScaleOverflow, "scale %d out of range", scale)
	}
	return decimalFromI128(i128FromUint64(v), int8(scale)), nil
}

// NewFromBigInt builds a Decimal from an arbitrary-precision integer,
// rejecting values that exceed MAX_VALUE significant digits.
func NewFromBigInt(v *big.Int, scale int) (Decimal, error) {
	if scale < 0 || scale > maxScale {
		return Decimal{}, newError(ScaleOverflow, "scale %d out of range", scale)
	}
	neg := v.Sign() < 0
	digits := new(big.Int).Abs(v).String()
	if digits == "0" {
		return decimalFromSmall(false, 0, int8(scale)), nil
	}
	mag, ok := bigFromDigits(neg, []byte(digits))
	if !ok {
		return Decimal{}, newError(ValueOutOfRange, "value exceeds internal limb capacity")
	}
	return decimalFromBig(mag, int8(scale))
}

// SetString reparses s and overwrites *d on success, leaving *d unchanged
// on failure — the database/sql Scanner idiom govalues-decimal follows.
func (d *Decimal) SetString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Bool reports whether d is non-zero.
func (d Decimal) Bool() bool { return !d.isZero() }

// Int64 narrows d to a signed 64-bit integer, truncating any fractional
// digits toward zero, and reports ValueOutOfRange if it doesn't fit.
func (d Decimal) Int64() (int64, error) {
	whole := truncateToInteger(d)
	switch whole.t {
	case tierSmall:
		if whole.neg {
			if whole.sm > 1<<63 {
				return 0, newError(ValueOutOfRange, "value does not fit int64")
			}
			if whole.sm == 1<<63 {
				return minInt64, nil
			}
			return -int64(whole.sm), nil
		}
		if whole.sm > 1<<63-1 {
			return 0, newError(ValueOutOfRange, "value does not fit int64")
		}
		return int64(whole.sm), nil
	default:
		return 0, newError(ValueOutOfRange, "value does not fit int64")
	}
}

// Uint64 narrows d to an unsigned 64-bit integer, truncating any
// fractional digits toward zero, and reports ValueOutOfRange if it doesn't
// fit (including when d is negative).
func (d Decimal) Uint64() (uint64, error) {
	whole := truncateToInteger(d)
	if whole.neg && !whole.isZero() {
		return 0, newError(ValueOutOfRange, "value is negative")
	}
	switch whole.t {
	case tierSmall:
		return whole.sm, nil
	case tierMid:
		if whole.md.mag.Hi == 0 {
			return whole.md.mag.Lo, nil
		}
		return 0, newError(ValueOutOfRange, "value does not fit uint64")
	default:
		return 0, newError(ValueOutOfRange, "value does not fit uint64")
	}
}

// Int128 narrows d to a signed 128-bit integer, represented as a sign flag
// plus the magnitude's high and low 64-bit halves (Go has no native
// 128-bit integer type). It reports ValueOutOfRange if the truncated
// integer part doesn't fit.
func (d Decimal) Int128() (neg bool, hi, lo uint64, err error) {
	whole := truncateToInteger(d)
	if whole.t == tierBig {
		return false, 0, 0, newError(ValueOutOfRange, "value does not fit int128")
	}
	v := whole.toI128()
	return v.neg, v.mag.Hi, v.mag.Lo, nil
}

// truncateToInteger divides d's coefficient by 10^scale, truncating toward
// zero, and returns the result at scale 0.
func truncateToInteger(d Decimal) Decimal {
	if d.scale == 0 {
		return d
	}
	switch d.t {
	case tierSmall:
		v := d.sm
		for i := int8(0); i < d.scale; i++ {
			v /= 10
		}
		return decimalFromSmall(d.neg, v, 0)
	case tierMid:
		v := d.md.mag
		ten := one28.FromUint64(10)
		for i := int8(0); i < d.scale; i++ {
			v, _ = one28.DivMod(v, ten)
		}
		return decimalFromI128(i128{neg: d.md.neg, mag: v}, 0)
	default:
		b := d.bg
		for i := int8(0); i < d.scale; i++ {
			b.divModSmall(10)
		}
		result, _ := decimalFromBig(b, 0)
		return result
	}
}
