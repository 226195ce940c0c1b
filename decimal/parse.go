package decimal

// SPDX-License-Identifier: Apache-2.0

import "github.com/tieredprecision/decimal/decimal/one28"

// isASCIISpace reports whether b is one of the ASCII whitespace bytes the
// parser trims. Intentionally narrower than unicode.IsSpace: the grammar is
// pinned to `[0-9.\-\s]` over an ASCII byte string, not Unicode text.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// Parse reads a decimal literal and returns the Decimal holding the
// smallest tier that can represent it. The accepted grammar is
// `[space]* [-]? digits [. digits] [space]*`: an isolated ".", a trailing
// "." with no fractional digits, and a leading "." with no integer digits
// are all rejected, matching the parser contract in full.
func Parse(s string) (Decimal, error) {
	i, j := 0, len(s)
	for i < j && isASCIISpace(s[i]) {
		i++
	}
	for j > i && isASCIISpace(s[j-1]) {
		j--
	}
	s = s[i:j]
	if s == "" {
		return Decimal{}, newError(InvalidArgument, "empty input")
	}

	pos := 0
	neg := false
	if s[pos] == '-' {
		neg = true
		pos++
	}

	intStart := pos
	for pos < len(s) && isASCIIDigit(s[pos]) {
		pos++
	}
	intDigits := s[intStart:pos]

	var fracDigits string
	if pos < len(s) && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(s) && isASCIIDigit(s[pos]) {
			pos++
		}
		fracDigits = s[fracStart:pos]
		if intDigits == "" || fracDigits == "" {
			return Decimal{}, newError(InvalidArgument, "%q: malformed decimal literal", s)
		}
	}

	if pos != len(s) || intDigits == "" {
		return Decimal{}, newError(InvalidArgument, "%q: malformed decimal literal", s)
	}

	// Trim before measuring scale: a fractional part that is all trailing
	// zeros (e.g. "1.0000000000000000000000000000000") must not trip the
	// scale ceiling below just because it was written long-hand.
	for len(fracDigits) > 0 && fracDigits[len(fracDigits)-1] == '0' {
		fracDigits = fracDigits[:len(fracDigits)-1]
	}

	scale := len(fracDigits)
	if scale > maxScale {
		return Decimal{}, newError(ScaleOverflow, "%q: scale %d exceeds maximum %d", s, scale, maxScale)
	}

	combined := intDigits + fracDigits

	significant := 0
	for _, c := range []byte(combined) {
		if c != '0' || significant > 0 {
			significant++
		}
	}
	// A run of all zeros has no significant digits but still has to parse
	// (it's the literal "0" at whatever scale was written).
	n := significant

	switch {
	case n <= 38:
		mag, ok := parseU128Digits(combined)
		if !ok {
			return Decimal{}, newError(InvalidArgument, "%q: digits overflowed 128 bits", s)
		}
		for scale > 0 {
			q, r := one28.DivMod(mag, one28.FromUint64(10))
			if !r.IsZero() {
				break
			}
			mag = q
			scale--
		}
		v := i128{neg: neg && !mag.IsZero(), mag: mag}
		return decimalFromI128(v, int8(scale)), nil

	case n <= maxPrecision && len(fracDigits) <= maxScale:
		mag, ok := bigFromDigits(false, []byte(combined))
		if !ok {
			return Decimal{}, newError(InvalidArgument, "%q: digits exceed internal capacity", s)
		}
		for scale > 0 {
			trial := mag
			r := trial.divModSmall(10)
			if r != 0 {
				break
			}
			mag = trial
			scale--
		}
		mag.neg = neg && !mag.isZero()
		return decimalFromBig(mag, int8(scale))

	default:
		return Decimal{}, newError(InvalidArgument, "%q: %d significant digits exceeds maximum %d", s, n, maxPrecision)
	}
}

// MustParse is a must version of Parse: it panics (or, under the
// decimal_abort build tag, aborts) on a parse failure, matching the
// library's loud/quiet split for constructors from string.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		fail(err)
	}
	return d
}

// parseU128Digits converts a run of ASCII decimal digits into a U128 by
// repeated multiply-and-add, reporting false if the value overflows 128
// bits (only possible here for a pathological caller bypassing the N<=38
// digit-count gate in Parse).
func parseU128Digits(digits string) (one28.U128, bool) {
	mag := one28.Zero
	ten := one28.FromUint64(10)
	for i := 0; i < len(digits); i++ {
		var overflow bool
		mag, overflow = one28.MulOverflows(mag, ten)
		if overflow {
			return one28.U128{}, false
		}
		mag, overflow = mag.Add(one28.FromUint64(uint64(digits[i] - '0')))
		if overflow {
			return one28.U128{}, false
		}
	}
	return mag, true
}
