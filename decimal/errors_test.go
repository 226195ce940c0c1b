package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString_(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "InvalidArgument", InvalidArgument.String())
	assert.Equal(t, "DivByZero", DivByZero.String())
	assert.Equal(t, "AddSubOverflow", AddSubOverflow.String())
	assert.Equal(t, "MulOverflow", MulOverflow.String())
	assert.Equal(t, "DivOverflow", DivOverflow.String())
	assert.Equal(t, "ScaleOverflow", ScaleOverflow.String())
	assert.Equal(t, "ValueOutOfRange", ValueOutOfRange.String())
	assert.Equal(t, "GenericError", GenericError.String())
	assert.Equal(t, "GenericError", Kind(255).String())
}

func TestErrorMessage_(t *testing.T) {
	err := newError(DivByZero, "cannot divide %s by zero", "5")
	assert.Equal(t, "decimal: DivByZero: cannot divide 5 by zero", err.Error())
}

func TestKindOf_(t *testing.T) {
	assert.Equal(t, Success, KindOf(nil))
	assert.Equal(t, DivByZero, KindOf(newError(DivByZero, "x")))
	assert.Equal(t, GenericError, KindOf(assertAnError{}))
}

type assertAnError struct{}

func (assertAnError) Error() string { return "boom" }
