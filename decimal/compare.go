package decimal

// SPDX-License-Identifier: Apache-2.0

// Cmp returns -1, 0, or +1 as l is less than, equal to, or greater than r.
// Comparison short-circuits on sign mismatch; for matching signs it widens
// both magnitudes to the Big tier (the operands' own tiers are not tried
// first), aligns scales there, and falls back to a truncated comparison
// with a truncation-aware tie-break when the alignment shift would overflow
// (spec.md §4.5.6, spec.md §9 Open Question 3).
func (l Decimal) Cmp(r Decimal) int {
	ls, rs := l.Sign(), r.Sign()
	if ls != rs {
		if ls < rs {
			return -1
		}
		return 1
	}
	if ls == 0 {
		return 0
	}

	mag := cmpMagnitudeAligned(l, r)
	if ls < 0 {
		return -mag
	}
	return mag
}

// cmpMagnitudeAligned compares |l| and |r| after aligning scales, assuming
// both are non-zero and share a sign already peeled off by Cmp.
func cmpMagnitudeAligned(l, r Decimal) int {
	lb, rb := l.toBig(), r.toBig()
	lb.neg, rb.neg = false, false
	sL, sR := int(l.scale), int(r.scale)

	switch {
	case sL == sR:
		return cmpMag(&lb, &rb)
	case sL < sR:
		shifted, ok := shiftBig(lb, sR-sL)
		if ok {
			return cmpMag(&shifted, &rb)
		}
		return cmpTruncated(rb, sR-sL, lb, false)
	default:
		shifted, ok := shiftBig(rb, sL-sR)
		if ok {
			return cmpMag(&lb, &shifted)
		}
		return cmpTruncated(lb, sL-sR, rb, true)
	}
}

// cmpTruncated handles the case where multiplying the smaller-scaled
// operand up by 10^delta overflowed: instead, divide the larger-scaled
// operand's magnitude (big) down by 10^delta, truncating, and compare the
// quotient against other. lhsIsBig reports whether big was the original
// left-hand magnitude, which sets the direction of the result both for an
// untied quotient comparison and for the tie-break.
func cmpTruncated(big bigInt, delta int, other bigInt, lhsIsBig bool) int {
	shift := bigInt{}
	if delta < len(pow10Big) {
		shift = pow10Big[delta]
	} else {
		shift = bigFromUint64(1)
		for i := 0; i < delta; i++ {
			shift.mulSmall(10)
		}
	}
	quo, rem := divModMag(&big, &shift)
	c := cmpMag(&quo, &other)
	if c != 0 {
		if lhsIsBig {
			return c
		}
		return -c
	}
	// Quotients tie: the truncated-away remainder makes the big side
	// strictly larger than what survived the truncation.
	if rem.isZero() {
		return 0
	}
	if lhsIsBig {
		return 1
	}
	return -1
}

// Equal reports whether l and r represent the same numeric value,
// regardless of scale or tier (e.g. 0 == -0.000).
func (l Decimal) Equal(r Decimal) bool { return l.Cmp(r) == 0 }

// LessThan reports whether l < r.
func (l Decimal) LessThan(r Decimal) bool { return l.Cmp(r) < 0 }

// LessThanOrEqual reports whether l <= r.
func (l Decimal) LessThanOrEqual(r Decimal) bool { return l.Cmp(r) <= 0 }

// GreaterThan reports whether l > r.
func (l Decimal) GreaterThan(r Decimal) bool { return l.Cmp(r) > 0 }

// GreaterThanOrEqual reports whether l >= r.
func (l Decimal) GreaterThanOrEqual(r Decimal) bool { return l.Cmp(r) >= 0 }

// NotEqual reports whether l and r represent different numeric values.
func (l Decimal) NotEqual(r Decimal) bool { return l.Cmp(r) != 0 }
