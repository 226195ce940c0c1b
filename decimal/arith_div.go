package decimal

// SPDX-License-Identifier: Apache-2.0

// Quo returns l/r. Division always operates at the Big tier regardless of
// operand tiers (spec.md §4.5.4): the scale extension below routinely needs
// more range than either operand started with, so there is little to save
// by trying Small or Mid first.
func (l Decimal) Quo(r Decimal) (Decimal, error) {
	rb := r.toBig()
	if rb.isZero() {
		return Decimal{}, newError(DivByZero, "division by zero")
	}
	lb := l.toBig()
	if lb.isZero() {
		return decimalFromSmall(false, 0, 0), nil
	}

	neg := lb.neg != rb.neg
	lb.neg, rb.neg = false, false

	sL, sR := int(l.scale), int(r.scale)

	shift := sR + divIncrScale + 1
	shifted, ok := shiftBig(lb, shift)
	if !ok {
		return Decimal{}, newError(DivOverflow, "dividend shift overflowed during division")
	}

	q, _ := divModMag(&shifted, &rb)

	resultScale := sL + divIncrScale
	if resultScale > maxScale {
		q.divModSmall(uint64(pow10Small[resultScale-maxScale]))
		resultScale = maxScale
	}

	r10 := q.divModSmall(10)
	if r10 >= 5 {
		q.addSmall(1)
	}
	q.neg = neg && !q.isZero()

	if q.prec() > maxPrecision {
		return Decimal{}, newError(DivOverflow, "quotient exceeds %d significant digits", maxPrecision)
	}

	q, resultScale = trimTrailingZerosBig(q, resultScale)
	return decimalFromBig(q, int8(resultScale))
}

// Mod returns l - trunc(l/r)*r, with the sign of l (spec.md §4.5.5). Like
// Quo it aligns and divides at the Big tier whatever the operands' tiers;
// the remainder, always smaller in magnitude than the aligned divisor, is
// packed into the narrowest tier that fits.
func (l Decimal) Mod(r Decimal) (Decimal, error) {
	rb := r.toBig()
	if rb.isZero() {
		return Decimal{}, newError(DivByZero, "modulo by zero")
	}
	lb := l.toBig()
	if lb.isZero() {
		return decimalFromSmall(false, 0, 0), nil
	}

	loB, roB, scale := alignBig(lb, int(l.scale), rb, int(r.scale))
	loB.neg, roB.neg = false, false

	_, rem := divModMag(&loB, &roB)
	rem.neg = l.neg && !rem.isZero()

	return decimalFromBig(rem, int8(scale))
}
