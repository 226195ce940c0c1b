package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tieredprecision/decimal/decimal/one28"
)

func bigOfI128(x i128) *big.Int {
	z := new(big.Int).Lsh(new(big.Int).SetUint64(x.mag.Hi), 64)
	z.Or(z, new(big.Int).SetUint64(x.mag.Lo))
	if x.neg {
		z.Neg(z)
	}
	return z
}

func randI128(r *rand.Rand) i128 {
	return i128{neg: r.Intn(2) == 0, mag: one28.U128{Hi: r.Uint64() % 1000, Lo: r.Uint64()}}
}

func TestI128FromInt64_(t *testing.T) {
	assert.True(t, i128FromInt64(0).isZero())
	assert.Equal(t, big.NewInt(42), bigOfI128(i128FromInt64(42)))
	assert.Equal(t, big.NewInt(-42), bigOfI128(i128FromInt64(-42)))
}

func TestCmpI128_(t *testing.T) {
	assert.Equal(t, -1, cmpI128(i128FromInt64(1), i128FromInt64(2)))
	assert.Equal(t, 1, cmpI128(i128FromInt64(2), i128FromInt64(1)))
	assert.Equal(t, 0, cmpI128(i128FromInt64(5), i128FromInt64(5)))
	assert.Equal(t, -1, cmpI128(i128FromInt64(-1), i128FromInt64(1)))
}

func TestAddI128AgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		x, y := randI128(r), randI128(r)
		z, overflow := addI128(x, y)
		assert.False(t, overflow)
		want := new(big.Int).Add(bigOfI128(x), bigOfI128(y))
		assert.Equal(t, want, bigOfI128(z), "x=%v y=%v", x, y)
	}
}

func TestMulI128AgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 1000; i++ {
		x, y := randI128(r), randI128(r)
		// |x| < 2^74; keep |y| < 2^54 so the product fits in 128 bits.
		y.mag = one28.U128{Lo: y.mag.Lo >> 10}
		z, overflow := mulI128(x, y)
		assert.False(t, overflow)
		want := new(big.Int).Mul(bigOfI128(x), bigOfI128(y))
		assert.Equal(t, want, bigOfI128(z), "x=%v y=%v", x, y)
	}
}

func TestMulI128Overflows_(t *testing.T) {
	huge := i128{mag: one28.U128{Hi: 1 << 62}}
	_, overflow := mulI128(huge, i128FromInt64(4))
	assert.True(t, overflow)
}

func TestDivModI128AgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		x, y := randI128(r), randI128(r)
		if y.isZero() {
			y = i128FromInt64(1)
		}
		q, rem := divModI128(x, y)
		wantQ, wantR := new(big.Int).QuoRem(bigOfI128(x), bigOfI128(y), new(big.Int))
		assert.Equal(t, wantQ, bigOfI128(q), "quotient x=%v y=%v", x, y)
		assert.Equal(t, wantR, bigOfI128(rem), "remainder x=%v y=%v", x, y)
	}
}

func TestI128BigRoundTrip_(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 500; i++ {
		x := randI128(r)
		b := x.toBig()
		assert.True(t, b.fitsI128())
		assert.Equal(t, x, b.toI128())
	}
}
