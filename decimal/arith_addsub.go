package decimal

// SPDX-License-Identifier: Apache-2.0

// addSignedU64 adds two sign-and-magnitude Small-tier coefficients and
// reports whether the result still fits the Small tier.
func addSignedU64(lneg bool, lmag uint64, rneg bool, rmag uint64) (neg bool, mag uint64, ok bool) {
	switch {
	case lmag == 0:
		return rneg, rmag, true
	case rmag == 0:
		return lneg, lmag, true
	case lneg == rneg:
		sum := lmag + rmag
		if sum < lmag || !fitsSmallMag(sum) {
			return false, 0, false
		}
		return lneg, sum, true
	case lmag >= rmag:
		return lneg, lmag - rmag, true
	default:
		return rneg, rmag - lmag, true
	}
}

// addSub implements both Add and Sub: subtract is add with the right
// operand's sign flipped. It walks the promotion ladder (spec.md §4.5.2):
// try the working tier, and on overflow widen to the next tier and retry.
// Trailing-zero trimming is deliberately not performed here — addition
// doesn't introduce new trailing zeros beyond what the operands already
// carried.
func (l Decimal) addSub(r Decimal, subtract bool) (Decimal, error) {
	wt := higherTier(l.t, r.t)
	for {
		switch wt {
		case tierSmall:
			rNeg := r.neg
			if subtract {
				rNeg = !rNeg
			}
			loMag, roMag, scale, ok := alignSmall(l.sm, int(l.scale), r.sm, int(r.scale))
			if ok {
				neg, mag, ok2 := addSignedU64(l.neg, loMag, rNeg, roMag)
				if ok2 {
					return decimalFromSmall(neg, mag, int8(scale)), nil
				}
			}
			wt = tierMid

		case tierMid:
			lm, rm := l.toI128(), r.toI128()
			if subtract {
				rm = rm.neg_()
			}
			loMag, roMag, scale, ok := alignMid(lm.mag, int(l.scale), rm.mag, int(r.scale))
			if ok {
				sum, overflow := addI128(i128{neg: lm.neg, mag: loMag}, i128{neg: rm.neg, mag: roMag})
				if !overflow {
					return decimalFromI128(sum, int8(scale)), nil
				}
			}
			wt = tierBig

		default:
			lb, rb := l.toBig(), r.toBig()
			if subtract {
				rb = negBig(&rb)
			}
			loB, roB, scale := alignBig(lb, int(l.scale), rb, int(r.scale))

			var sum bigInt
			if !addBig(&sum, &loB, &roB) {
				return Decimal{}, newError(GenericError, "addition exceeded internal limb capacity")
			}
			if sum.prec() > maxPrecision {
				return Decimal{}, newError(AddSubOverflow, "%s %s %s overflowed", l.String(), addSubSymbol(subtract), r.String())
			}
			result, err := decimalFromBig(sum, int8(scale))
			if err != nil {
				return Decimal{}, newError(AddSubOverflow, "%s", err)
			}
			return result, nil
		}
	}
}

func addSubSymbol(subtract bool) string {
	if subtract {
		return "-"
	}
	return "+"
}

// Add returns l+r, promoting tiers as needed and reporting AddSubOverflow
// if the sum exceeds MAX_VALUE even at the Big tier.
func (l Decimal) Add(r Decimal) (Decimal, error) {
	return l.addSub(r, false)
}

// Sub returns l-r.
func (l Decimal) Sub(r Decimal) (Decimal, error) {
	return l.addSub(r, true)
}
