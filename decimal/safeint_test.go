package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeAddI64_(t *testing.T) {
	z, ok := safeAddI64(5, 10)
	assert.True(t, ok)
	assert.Equal(t, int64(15), z)

	_, ok = safeAddI64(maxInt64, 1)
	assert.False(t, ok)

	_, ok = safeAddI64(minInt64, -1)
	assert.False(t, ok)
}

func TestSafeSubI64_(t *testing.T) {
	z, ok := safeSubI64(10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(7), z)

	_, ok = safeSubI64(minInt64, 1)
	assert.False(t, ok)

	_, ok = safeSubI64(maxInt64, minInt64)
	assert.False(t, ok)
}

func TestSafeMulI64_(t *testing.T) {
	z, ok := safeMulI64(6, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(42), z)

	_, ok = safeMulI64(maxInt64, 2)
	assert.False(t, ok)

	_, ok = safeMulI64(minInt64, -1)
	assert.False(t, ok)

	z, ok = safeMulI64(0, minInt64)
	assert.True(t, ok)
	assert.Equal(t, int64(0), z)
}

func TestSafeDivI64_(t *testing.T) {
	q, divByZero, overflow := safeDivI64(10, 3)
	assert.False(t, divByZero)
	assert.False(t, overflow)
	assert.Equal(t, int64(3), q)

	_, divByZero, _ = safeDivI64(10, 0)
	assert.True(t, divByZero)

	_, _, overflow = safeDivI64(minInt64, -1)
	assert.True(t, overflow)
}

func TestSafeAddI128_(t *testing.T) {
	z, ok := safeAddI128(i128FromInt64(5), i128FromInt64(10))
	assert.True(t, ok)
	assert.Equal(t, i128FromInt64(15), z)
}

func TestSafeMulI128_(t *testing.T) {
	z, ok := safeMulI128(i128FromInt64(6), i128FromInt64(7))
	assert.True(t, ok)
	assert.Equal(t, i128FromInt64(42), z)
}

func TestSafeDivI128_(t *testing.T) {
	q, divByZero := safeDivI128(i128FromInt64(10), i128FromInt64(3))
	assert.False(t, divByZero)
	assert.Equal(t, i128FromInt64(3), q)

	_, divByZero = safeDivI128(i128FromInt64(10), i128{})
	assert.True(t, divByZero)
}

const maxInt64 = 1<<63 - 1
