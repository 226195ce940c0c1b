package decimal

// SPDX-License-Identifier: Apache-2.0

import "github.com/tieredprecision/decimal/decimal/one28"

// higherTier returns the wider of two tiers: the arithmetic engine always
// starts working at the higher of its two operands' tiers (spec.md §4.5
// step 1) before the promotion ladder gets a chance to widen further.
func higherTier(a, b tier) tier {
	if a > b {
		return a
	}
	return b
}

// shiftSmall multiplies a Small-tier magnitude by 10^n and reports whether
// the result still fits. n is expected to be small (scale differences are
// bounded by maxScale), but any n outside the pow10Small table's range is
// treated as an overflow, forcing promotion to the next tier.
func shiftSmall(v uint64, n int) (uint64, bool) {
	if n == 0 {
		return v, true
	}
	if n < 0 || n >= len(pow10Small) {
		return 0, false
	}
	return safeMulU64(v, uint64(pow10Small[n]))
}

func safeMulU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	z := a * b
	if z/b != a {
		return 0, false
	}
	if !fitsSmallMag(z) {
		return 0, false
	}
	return z, true
}

// shiftMid multiplies a Mid-tier magnitude by 10^n and reports overflow.
func shiftMid(v one28.U128, n int) (one28.U128, bool) {
	if n == 0 {
		return v, true
	}
	if n < 0 || n >= len(pow10Mid) {
		return one28.U128{}, false
	}
	return safeMulU128(v, pow10U128(n))
}

// shiftBig multiplies a Big-tier magnitude by 10^n. The wide limb capacity
// means this only fails (reports false) if n is implausibly large — it
// never happens in practice since every caller keeps n at or below
// maxScale+divIncrScale+1 (Quo's dividend shift), well inside pow10Big's
// table and the wide limb capacity alike.
func shiftBig(v bigInt, n int) (bigInt, bool) {
	if n == 0 {
		return v, true
	}
	if n < 0 {
		return bigInt{}, false
	}
	var z bigInt
	if n < len(pow10Big) {
		if !mulMag(&z, &v, &pow10Big[n]) {
			return bigInt{}, false
		}
		z.neg = v.neg && !z.isZero()
		return z, true
	}
	z = v
	for i := 0; i < n; i++ {
		if !z.mulSmall(10) {
			return bigInt{}, false
		}
	}
	z.neg = v.neg && !z.isZero()
	return z, true
}

// alignSmall aligns two Small-tier magnitudes to the same scale, matching
// the larger of the two input scales, and reports overflow if the required
// shift doesn't fit.
func alignSmall(lmag uint64, lscale int, rmag uint64, rscale int) (lo, ro uint64, scale int, ok bool) {
	switch {
	case lscale == rscale:
		return lmag, rmag, lscale, true
	case lscale < rscale:
		shifted, ok := shiftSmall(lmag, rscale-lscale)
		return shifted, rmag, rscale, ok
	default:
		shifted, ok := shiftSmall(rmag, lscale-rscale)
		return lmag, shifted, lscale, ok
	}
}

func alignMid(lmag one28.U128, lscale int, rmag one28.U128, rscale int) (lo, ro one28.U128, scale int, ok bool) {
	switch {
	case lscale == rscale:
		return lmag, rmag, lscale, true
	case lscale < rscale:
		shifted, ok := shiftMid(lmag, rscale-lscale)
		return shifted, rmag, rscale, ok
	default:
		shifted, ok := shiftMid(rmag, lscale-rscale)
		return lmag, shifted, lscale, ok
	}
}

func alignBig(lmag bigInt, lscale int, rmag bigInt, rscale int) (lo, ro bigInt, scale int) {
	switch {
	case lscale == rscale:
		return lmag, rmag, lscale
	case lscale < rscale:
		shifted, _ := shiftBig(lmag, rscale-lscale)
		return shifted, rmag, rscale
	default:
		shifted, _ := shiftBig(rmag, lscale-rscale)
		return lmag, shifted, lscale
	}
}

// trimTrailingZerosMid strips trailing decimal zeros from a Mid-tier
// magnitude, decreasing scale while it stays above zero.
func trimTrailingZerosMid(v one28.U128, scale int) (one28.U128, int) {
	ten := one28.FromUint64(10)
	for scale > 0 {
		q, r := one28.DivMod(v, ten)
		if !r.IsZero() {
			break
		}
		v = q
		scale--
	}
	return v, scale
}

// trimTrailingZerosBig strips trailing decimal zeros from a Big-tier
// magnitude, decreasing scale while it stays above zero.
func trimTrailingZerosBig(v bigInt, scale int) (bigInt, int) {
	for scale > 0 {
		trial := v
		r := trial.divModSmall(10)
		if r != 0 {
			break
		}
		v = trial
		scale--
	}
	return v, scale
}

// roundHalfAwayFromZeroBig divides v by 10^k, truncating, then applies
// round-half-away-from-zero using the single digit shifted out last. This
// is the rounding primitive for multiply's scale reduction (spec.md §4.5.3
// step 3); Quo applies the same rule inline to its single extra digit.
func roundHalfAwayFromZeroBig(v bigInt, k int) bigInt {
	if k <= 0 {
		return v
	}
	z := v
	var last byte
	for i := 0; i < k; i++ {
		last = byte('0' + z.divModSmall(10))
	}
	if last >= '5' {
		z.addSmall(1)
	}
	return z
}
