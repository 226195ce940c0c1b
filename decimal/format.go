package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"strings"

	"github.com/tieredprecision/decimal/decimal/one28"
)

// String renders d in canonical form: the shortest string that parses back
// to the same value. The fractional part has its trailing zeros trimmed
// here, since add/sub/mod deliberately leave the stored coefficient's scale
// untrimmed (spec.md §9 Open Question 2 resolves the teacher sources'
// disagreement in favor of always trimming on output; the non-trimming
// behavior is not carried forward).
func (d Decimal) String() string {
	if d.isZero() {
		return "0"
	}

	digits := d.digitString()
	scale := int(d.scale)

	for scale > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		scale--
	}

	var sb strings.Builder
	if d.neg {
		sb.WriteByte('-')
	}

	switch {
	case scale == 0:
		sb.WriteString(digits)
	case len(digits) <= scale:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", scale-len(digits)))
		sb.WriteString(digits)
	default:
		intLen := len(digits) - scale
		sb.WriteString(digits[:intLen])
		sb.WriteByte('.')
		sb.WriteString(digits[intLen:])
	}

	return sb.String()
}

// digitString returns the absolute coefficient's decimal digits, most
// significant first, with no leading zeros (the caller has already
// excluded the zero value, so this is never empty).
func (d Decimal) digitString() string {
	switch d.t {
	case tierSmall:
		return uintToString(d.sm)
	case tierMid:
		return u128ToString(d.md.mag)
	default:
		return string(d.bg.digits())
	}
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func u128ToString(v one28.U128) string {
	if v.IsZero() {
		return "0"
	}
	ten := one28.FromUint64(10)
	var digits []byte
	for !v.IsZero() {
		q, r := one28.DivMod(v, ten)
		digits = append(digits, byte('0')+byte(r.Lo))
		v = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
