package decimal

// SPDX-License-Identifier: Apache-2.0

// MustAdd returns l+r, failing loudly (panic or process abort, chosen at
// compile time by the decimal_abort build tag) instead of returning an
// error.
func (l Decimal) MustAdd(r Decimal) Decimal {
	v, err := l.Add(r)
	if err != nil {
		fail(err)
	}
	return v
}

// MustSub returns l-r, failing loudly on error.
func (l Decimal) MustSub(r Decimal) Decimal {
	v, err := l.Sub(r)
	if err != nil {
		fail(err)
	}
	return v
}

// MustMul returns l*r, failing loudly on error.
func (l Decimal) MustMul(r Decimal) Decimal {
	v, err := l.Mul(r)
	if err != nil {
		fail(err)
	}
	return v
}

// MustQuo returns l/r, failing loudly on error.
func (l Decimal) MustQuo(r Decimal) Decimal {
	v, err := l.Quo(r)
	if err != nil {
		fail(err)
	}
	return v
}

// MustMod returns l%r, failing loudly on error.
func (l Decimal) MustMod(r Decimal) Decimal {
	v, err := l.Mod(r)
	if err != nil {
		fail(err)
	}
	return v
}
