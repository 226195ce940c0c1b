package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigOf(x *bigInt) *big.Int {
	z := new(big.Int)
	for i := x.n - 1; i >= 0; i-- {
		z.Lsh(z, 64)
		z.Or(z, new(big.Int).SetUint64(x.w[i]))
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

func randBig(r *rand.Rand, words int) bigInt {
	var z bigInt
	z.n = words
	for i := 0; i < words; i++ {
		z.w[i] = r.Uint64()
	}
	z.neg = r.Intn(2) == 0
	z.normalize()
	return z
}

func TestBigFromInt64_(t *testing.T) {
	assert.Equal(t, bigInt{}, bigFromInt64(0))
	assert.Equal(t, big.NewInt(42), bigOf(ptr(bigFromInt64(42))))
	assert.Equal(t, big.NewInt(-42), bigOf(ptr(bigFromInt64(-42))))
	assert.Equal(t, new(big.Int).SetInt64(-9223372036854775808), bigOf(ptr(bigFromInt64(-9223372036854775808))))
}

func ptr(x bigInt) *bigInt { return &x }

func TestBigFromDigits_(t *testing.T) {
	z, ok := bigFromDigits(false, []byte("123456789012345678901234567890"))
	assert.True(t, ok)
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, want, bigOf(&z))

	z, ok = bigFromDigits(true, []byte("0"))
	assert.True(t, ok)
	assert.True(t, z.isZero())
	assert.False(t, z.neg)
}

func TestDigitsRoundTrip_(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		x := randBig(r, 1+r.Intn(bigWideWords))
		d := x.digits()
		z, ok := bigFromDigits(false, d)
		assert.True(t, ok)
		assert.Equal(t, 0, cmpMag(&x, &z), "x=%v got=%v", bigOf(&x), bigOf(&z))
	}
}

func TestAddBigAgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		x := randBig(r, 1+r.Intn(5))
		y := randBig(r, 1+r.Intn(5))

		var z bigInt
		ok := addBig(&z, &x, &y)
		assert.True(t, ok)

		want := new(big.Int).Add(bigOf(&x), bigOf(&y))
		assert.Equal(t, want, bigOf(&z), "x=%v y=%v", bigOf(&x), bigOf(&y))
	}
}

func TestMulBigAgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		x := randBig(r, 1+r.Intn(5))
		y := randBig(r, 1+r.Intn(5))

		var z bigInt
		ok := mulBig(&z, &x, &y)
		assert.True(t, ok)

		want := new(big.Int).Mul(bigOf(&x), bigOf(&y))
		assert.Equal(t, want, bigOf(&z), "x=%v y=%v", bigOf(&x), bigOf(&y))
	}
}

func TestMulBigOverflows_(t *testing.T) {
	x := randBigFull()
	y := randBigFull()
	var z bigInt
	ok := mulBig(&z, &x, &y)
	assert.False(t, ok)
}

func randBigFull() bigInt {
	var z bigInt
	z.n = bigWideWords
	for i := range z.w {
		z.w[i] = ^uint64(0)
	}
	return z
}

func TestDivModBigAgainstBigInt_(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 2000; i++ {
		x := randBig(r, 1+r.Intn(5))
		y := randBig(r, 1+r.Intn(5))
		if y.isZero() {
			y = bigFromInt64(1)
		}

		q, rem := divModBig(&x, &y)

		wantQ, wantR := new(big.Int).QuoRem(bigOf(&x), bigOf(&y), new(big.Int))
		assert.Equal(t, wantQ.String(), bigOf(&q).String(), "quotient x=%v y=%v", bigOf(&x), bigOf(&y))
		assert.Equal(t, wantR.String(), bigOf(&rem).String(), "remainder x=%v y=%v", bigOf(&x), bigOf(&y))
	}
}

func TestDivModBigSmallerThanDivisor_(t *testing.T) {
	x := bigFromInt64(5)
	y := bigFromInt64(10)
	q, r := divModBig(&x, &y)
	assert.True(t, q.isZero())
	assert.Equal(t, bigFromInt64(5), r)
}

func TestCmpBig_(t *testing.T) {
	a, b := bigFromInt64(5), bigFromInt64(10)
	assert.Equal(t, -1, cmpBig(&a, &b))
	assert.Equal(t, 1, cmpBig(&b, &a))
	assert.Equal(t, 0, cmpBig(&a, &a))

	neg, pos := bigFromInt64(-1), bigFromInt64(1)
	assert.Equal(t, -1, cmpBig(&neg, &pos))
}

func TestFitsValue_(t *testing.T) {
	small := bigFromInt64(123)
	assert.True(t, small.fitsValue())

	full := randBigFull()
	assert.False(t, full.fitsValue())
}

func TestAddSmallMulSmallDivModSmall_(t *testing.T) {
	var z bigInt
	assert.True(t, z.addSmall(100))
	assert.True(t, z.mulSmall(10))
	assert.True(t, z.addSmall(5))
	assert.Equal(t, int64(1005), bigOf(&z).Int64())

	rem := z.divModSmall(10)
	assert.Equal(t, uint64(5), rem)
	assert.Equal(t, int64(100), bigOf(&z).Int64())
}

func TestPrecAndTzeros_(t *testing.T) {
	z, _ := bigFromDigits(false, []byte("123000"))
	assert.Equal(t, 6, z.prec())
	assert.Equal(t, 3, z.tzeros())

	zero := bigInt{}
	assert.Equal(t, 0, zero.prec())
	assert.Equal(t, 0, zero.tzeros())
}

func TestShrDecimal_(t *testing.T) {
	z, _ := bigFromDigits(false, []byte("123456"))
	last := z.shrDecimal(2)
	assert.Equal(t, byte('5'), last)
	assert.Equal(t, int64(1234), bigOf(&z).Int64())
}

func TestNegBig_(t *testing.T) {
	x := bigFromInt64(42)
	n := negBig(&x)
	assert.Equal(t, bigFromInt64(-42), n)

	zero := bigInt{}
	assert.Equal(t, bigInt{}, negBig(&zero))
}
