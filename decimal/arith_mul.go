package decimal

// SPDX-License-Identifier: Apache-2.0

// trimTrailingZeros strips trailing decimal zeros from d's coefficient,
// reducing its scale correspondingly, regardless of which tier currently
// backs it. Multiplication uses this on its operands before engaging the
// promotion ladder (spec.md §4.5.3): a smaller coefficient is less likely
// to need a wider tier, and the result is mathematically identical.
func trimTrailingZeros(d Decimal) Decimal {
	switch d.t {
	case tierSmall:
		mag, scale := d.sm, int(d.scale)
		for scale > 0 && mag%10 == 0 {
			mag /= 10
			scale--
		}
		return decimalFromSmall(d.neg, mag, int8(scale))
	case tierMid:
		mag, scale := trimTrailingZerosMid(d.md.mag, int(d.scale))
		return decimalFromI128(i128{neg: d.md.neg, mag: mag}, int8(scale))
	default:
		mag, scale := trimTrailingZerosBig(d.bg, int(d.scale))
		result, _ := decimalFromBig(mag, int8(scale))
		return result
	}
}

// finishMul takes a raw, unrounded product magnitude at the given (possibly
// out-of-range) scale, applies the shared multiply post-processing (scale
// rounding, MAX_VALUE range check, trailing-zero normalization), and packs
// the result into the narrowest tier that fits. It is the common tail for
// all three working-tier attempts in Mul, since a raw product computed at
// Small or Mid tier is always representable as a bigInt too.
func finishMul(neg bool, mag bigInt, scale int) (Decimal, error) {
	mag.neg = neg && !mag.isZero()
	if scale > maxScale {
		d := scale - maxScale
		mag = roundHalfAwayFromZeroBig(mag, d)
		mag.neg = neg && !mag.isZero()
		scale = maxScale
	}
	if mag.prec() > maxPrecision {
		return Decimal{}, newError(MulOverflow, "product exceeds %d significant digits", maxPrecision)
	}
	mag, scale = trimTrailingZerosBig(mag, scale)
	return decimalFromBig(mag, int8(scale))
}

// Mul returns l*r, promoting tiers on overflow and reporting MulOverflow if
// the product's magnitude exceeds MAX_VALUE even at the Big tier.
func (l Decimal) Mul(r Decimal) (Decimal, error) {
	l = trimTrailingZeros(l)
	r = trimTrailingZeros(r)

	rawScale := int(l.scale) + int(r.scale)
	neg := l.neg != r.neg

	wt := higherTier(l.t, r.t)
	for {
		switch wt {
		case tierSmall:
			prod, ok := safeMulU64(l.sm, r.sm)
			if ok {
				return finishMul(neg, bigFromUint64(prod), rawScale)
			}
			wt = tierMid

		case tierMid:
			lm, rm := l.toI128(), r.toI128()
			prodMag, ok := safeMulU128(lm.mag, rm.mag)
			if ok {
				return finishMul(neg, bigFromU128(false, prodMag), rawScale)
			}
			wt = tierBig

		default:
			lb, rb := l.toBig(), r.toBig()
			var prod bigInt
			if !mulMag(&prod, &lb, &rb) {
				return Decimal{}, newError(GenericError, "multiplication exceeded internal limb capacity")
			}
			return finishMul(neg, prod, rawScale)
		}
	}
}
