package decimal

// SPDX-License-Identifier: Apache-2.0

import "github.com/tieredprecision/decimal/decimal/one28"

// safeAddI64 returns x+y and reports whether the sum overflowed int64,
// the fint.add pattern from govalues-decimal's coefficient.go generalized
// to signed values. These int64 ops work directly on signed values; the
// Small tier itself stores an unsigned magnitude with the sign out of band
// and uses safeMulU64/addSignedU64 instead.
func safeAddI64(x, y int64) (z int64, ok bool) {
	z = x + y
	// Overflow iff the operands share a sign and the result's sign differs.
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z > 0) {
		return 0, false
	}
	return z, true
}

func safeSubI64(x, y int64) (z int64, ok bool) {
	if y == minInt64 {
		return 0, false
	}
	return safeAddI64(x, -y)
}

func safeMulI64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if (x == minInt64 && y == -1) || (y == minInt64 && x == -1) {
		return 0, false
	}
	return z, true
}

// safeDivI64 divides x by y (truncating) and reports a divide-by-zero
// condition distinctly from an ordinary overflow.
func safeDivI64(x, y int64) (q int64, divByZero, overflow bool) {
	if y == 0 {
		return 0, true, false
	}
	if x == minInt64 && y == -1 {
		return 0, false, true
	}
	return x / y, false, false
}

const minInt64 = -1 << 63

// safeAddI128 returns x+y and reports whether it overflowed 128 bits.
func safeAddI128(x, y i128) (z i128, ok bool) {
	z, overflow := addI128(x, y)
	return z, !overflow
}

// safeMulI128 returns x*y and reports whether it overflowed 128 bits.
func safeMulI128(x, y i128) (z i128, ok bool) {
	z, overflow := mulI128(x, y)
	return z, !overflow
}

// safeDivI128 divides x by y and reports a divide-by-zero condition.
func safeDivI128(x, y i128) (q i128, divByZero bool) {
	if y.isZero() {
		return i128{}, true
	}
	q, _ = divModI128(x, y)
	return q, false
}

// safeMulU128 multiplies two unsigned magnitudes and reports whether the
// product overflowed 128 bits, used by scale-alignment code that shifts a
// Mid-tier magnitude by a power of ten.
func safeMulU128(x, y one28.U128) (z one28.U128, ok bool) {
	z, overflow := one28.MulOverflows(x, y)
	return z, !overflow
}
