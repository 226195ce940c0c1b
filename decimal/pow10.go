package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"

	"github.com/tieredprecision/decimal/decimal/one28"
)

// pow10Small holds 10^0..10^18, the full range that still fits in an int64
// (10^18 < 2^63-1 < 10^19), mirroring govalues-decimal's sintPow10 table.
var pow10Small [19]int64

// pow10Mid holds 10^0..10^38, the full range of a 128-bit magnitude
// (10^38 < 2^127), mirroring govalues-decimal's pow10 table widened to the
// Mid tier's 128-bit kernel.
var pow10Mid [39]i128

// pow10Big holds 10^0..10^40, two entries past the Mid tier's ceiling so the
// arithmetic engine never has to special-case "the next power after the
// largest Mid-tier one": it can always read one more entry than the tier
// it is about to overflow out of. Entries are built once at init time from
// math/big and frozen into the fixed-capacity bigInt representation the
// hot arithmetic path actually uses.
var pow10Big [41]bigInt

func init() {
	pow10Small[0] = 1
	for i := 1; i < len(pow10Small); i++ {
		pow10Small[i] = pow10Small[i-1] * 10
	}

	pow10Mid[0] = i128FromUint64(1)
	for i := 1; i < len(pow10Mid); i++ {
		z, overflow := mulI128(pow10Mid[i-1], i128FromUint64(10))
		if overflow {
			panic("decimal: pow10Mid table overflowed 128 bits")
		}
		pow10Mid[i] = z
	}

	ten := big.NewInt(10)
	acc := big.NewInt(1)
	for i := range pow10Big {
		if i > 0 {
			acc = new(big.Int).Mul(acc, ten)
		}
		pow10Big[i] = bigFromBigInt(acc)
	}
}

// bigFromBigInt freezes a non-negative math/big.Int into the fixed-capacity
// bigInt representation. It is only ever called from var-init code building
// the tables above, never from the arithmetic hot path.
func bigFromBigInt(v *big.Int) bigInt {
	digits := v.String()
	z, ok := bigFromDigits(false, []byte(digits))
	if !ok {
		panic("decimal: pow10Big table entry exceeds bigInt capacity")
	}
	return z
}

// pow10U128 returns 10^n as an unsigned one28.U128, for n within pow10Mid's
// range. It is used by scale-alignment code that otherwise only deals in
// unsigned magnitudes.
func pow10U128(n int) one28.U128 {
	return pow10Mid[n].mag
}
