//go:build !decimal_abort

package decimal

// SPDX-License-Identifier: Apache-2.0

// fail is the loud-failure hook used by the operator-style constructors and
// arithmetic wrappers (MustParse, MustAdd, and so on). This build panics
// with the underlying *Error; build with -tags decimal_abort to switch to
// a hard process abort instead, matching the compile-time choice the
// value model calls for between "throw" and "abort" failure policies.
func fail(err error) {
	panic(err)
}
