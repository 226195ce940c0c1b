package decimal

// SPDX-License-Identifier: Apache-2.0

import "github.com/tieredprecision/decimal/decimal/one28"

// i128 is the Mid-tier coefficient kernel: a signed 128-bit integer built by
// keeping the sign out of band from an unsigned one28.U128 magnitude, the
// same convention bigInt uses at the Big tier and Decimal uses at the top
// level. one28 only ever sees magnitudes.
type i128 struct {
	neg bool
	mag one28.U128
}

func i128FromUint64(v uint64) i128 {
	return i128{mag: one28.FromUint64(v)}
}

func i128FromInt64(v int64) i128 {
	if v == 0 {
		return i128{}
	}
	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}
	return i128{neg: neg, mag: one28.FromUint64(mag)}
}

func (x i128) isZero() bool { return x.mag.IsZero() }

func (x i128) sign() int {
	switch {
	case x.isZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x i128) neg_() i128 {
	if x.isZero() {
		return x
	}
	return i128{neg: !x.neg, mag: x.mag}
}

func cmpI128(x, y i128) int {
	switch {
	case x.sign() != y.sign():
		if x.sign() < y.sign() {
			return -1
		}
		return 1
	case x.sign() == 0:
		return 0
	case !x.neg:
		return x.mag.Cmp(y.mag)
	default:
		return -x.mag.Cmp(y.mag)
	}
}

// addI128 returns x+y and reports whether it overflowed 128 bits.
func addI128(x, y i128) (z i128, overflow bool) {
	switch {
	case x.isZero():
		return y, false
	case y.isZero():
		return x, false
	case x.neg == y.neg:
		mag, of := x.mag.Add(y.mag)
		return i128{neg: x.neg && !mag.IsZero(), mag: mag}, of
	case x.mag.Cmp(y.mag) >= 0:
		mag, _ := x.mag.Sub(y.mag)
		return i128{neg: x.neg && !mag.IsZero(), mag: mag}, false
	default:
		mag, _ := y.mag.Sub(x.mag)
		return i128{neg: y.neg && !mag.IsZero(), mag: mag}, false
	}
}

// mulI128 returns x*y and reports whether the product overflowed 128 bits.
func mulI128(x, y i128) (z i128, overflow bool) {
	mag, of := one28.MulOverflows(x.mag, y.mag)
	return i128{neg: (x.neg != y.neg) && !mag.IsZero(), mag: mag}, of
}

// divModI128 divides x by y with truncating sign rules matching divModBig.
func divModI128(x, y i128) (q, r i128) {
	qm, rm := one28.DivMod(x.mag, y.mag)
	q = i128{neg: (x.neg != y.neg) && !qm.IsZero(), mag: qm}
	r = i128{neg: x.neg && !rm.IsZero(), mag: rm}
	return q, r
}

// toBig widens a Mid-tier value to a bigInt, used when the engine promotes
// past 128 bits.
func (x i128) toBig() bigInt {
	return bigFromU128(x.neg, x.mag)
}

// fitsI128 reports whether a bigInt magnitude fits back into 128 bits, used
// when choosing a tier for a freshly parsed or computed value.
func (x *bigInt) fitsI128() bool {
	return x.n <= 2
}

// toI128 narrows a bigInt that fitsI128 into the Mid-tier kernel.
func (x *bigInt) toI128() i128 {
	var mag one28.U128
	if x.n > 0 {
		mag.Lo = x.w[0]
	}
	if x.n > 1 {
		mag.Hi = x.w[1]
	}
	return i128{neg: x.neg, mag: mag}
}
