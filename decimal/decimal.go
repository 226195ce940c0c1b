// Package decimal implements a fixed-point arbitrary-precision signed
// decimal number, modelled after the runtime DECIMAL type of a database
// engine: every value carries a signed coefficient and an independent
// scale (digits after the point), and the internal representation widens
// through three tiers — a 64-bit integer, a 128-bit integer, and a
// fixed-capacity big integer — as operations demand more range.
package decimal

// SPDX-License-Identifier: Apache-2.0

import "github.com/tieredprecision/decimal/decimal/one28"

// Limits from the value model: scale is bounded, precision is bounded, and
// division extends scale incrementally rather than all at once.
const (
	maxScale     = 30
	maxPrecision = 96
	divIncrScale = 4
)

// tier identifies which union arm of a Decimal currently holds its
// coefficient. Representation is never canonical: a small value may be
// parked in Mid or Big, and every operation still has to compare equal.
type tier uint8

const (
	tierSmall tier = iota
	tierMid
	tierBig
)

// Decimal is a signed, arbitrary-precision fixed-point number. The zero
// value is the numeric value 0 at scale 0, ready to use without
// construction — the same zero-value-is-useful discipline the rest of the
// decimal ecosystem follows. Decimal is a plain value type: copying it
// copies its coefficient inline, there is no shared state and no
// destructor, so independent Decimal values need no synchronization
// between goroutines (mutating the same value concurrently is a data race,
// same as any other Go value).
type Decimal struct {
	t     tier
	neg   bool
	scale int8
	sm    uint64  // magnitude, valid iff t == tierSmall; fits a signed int64
	md    i128    // valid iff t == tierMid
	bg    bigInt  // valid iff t == tierBig
}

// isZero reports whether d is the numeric value zero, regardless of tier.
func (d Decimal) isZero() bool {
	switch d.t {
	case tierSmall:
		return d.sm == 0
	case tierMid:
		return d.md.isZero()
	default:
		return d.bg.isZero()
	}
}

// IsZero reports whether d is the numeric value zero.
func (d Decimal) IsZero() bool { return d.isZero() }

// IsNeg reports whether d is strictly negative. Zero is never negative
// regardless of how its sign bit happens to be set internally.
func (d Decimal) IsNeg() bool { return d.neg && !d.isZero() }

// Sign returns -1, 0, or +1 matching d's sign.
func (d Decimal) Sign() int {
	switch {
	case d.isZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int { return int(d.scale) }

// tierLevel reports which internal representation currently backs d: 0 for
// Small, 1 for Mid, 2 for Big. It exists for tests and diagnostics only —
// per the value model, no arithmetic result depends on it.
func (d Decimal) tierLevel() int { return int(d.t) }

// toBig widens d's coefficient to a bigInt, regardless of its current tier.
// This is the uniform entry point the arithmetic engine uses once it has
// decided the working tier is Big.
func (d Decimal) toBig() bigInt {
	switch d.t {
	case tierSmall:
		b := bigFromUint64(d.sm)
		b.neg = d.neg && !b.isZero()
		return b
	case tierMid:
		return d.md.toBig()
	default:
		return d.bg
	}
}

// toI128 widens d's coefficient to the Mid-tier kernel. Callers must only
// use this when d.t is Small or Mid (tierBig does not generally fit).
func (d Decimal) toI128() i128 {
	if d.t == tierMid {
		return d.md
	}
	return i128{neg: d.neg && d.sm != 0, mag: one28.FromUint64(d.sm)}
}

// fitsSmallMag reports whether an unsigned magnitude fits the signed int64
// range the Small tier promises.
func fitsSmallMag(mag uint64) bool {
	return mag <= 1<<63
}

// decimalFromSmall builds a Decimal directly in the Small tier. Callers
// must ensure mag fits (fitsSmallMag) and scale is in range.
func decimalFromSmall(neg bool, mag uint64, scale int8) Decimal {
	return Decimal{t: tierSmall, neg: neg && mag != 0, sm: mag, scale: scale}
}

// decimalFromI128 builds a Decimal from a Mid-tier kernel, demoting to
// Small when the magnitude fits and promoting to Big when the value lies
// outside the signed 128-bit range.
func decimalFromI128(v i128, scale int8) Decimal {
	if v.mag.Hi == 0 && fitsSmallMag(v.mag.Lo) {
		return decimalFromSmall(v.neg, v.mag.Lo, scale)
	}
	if v.mag.Hi>>63 != 0 && !(v.neg && v.mag == (one28.U128{Hi: 1 << 63})) {
		return Decimal{t: tierBig, neg: v.neg, bg: v.toBig(), scale: scale}
	}
	return Decimal{t: tierMid, neg: v.neg && !v.isZero(), md: v, scale: scale}
}

// decimalFromBig builds a Decimal from a bigInt, demoting to the smallest
// tier that fits and rejecting values that exceed MAX_PRECISION digits.
func decimalFromBig(b bigInt, scale int8) (Decimal, error) {
	if b.prec() > maxPrecision {
		return Decimal{}, newError(ValueOutOfRange, "magnitude exceeds %d significant digits", maxPrecision)
	}
	if b.fitsI128() {
		return decimalFromI128(b.toI128(), scale), nil
	}
	return Decimal{t: tierBig, neg: b.neg && !b.isZero(), bg: b, scale: scale}, nil
}
