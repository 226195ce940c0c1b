//go:build decimal_abort

package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"os"
)

// fail is the loud-failure hook under the decimal_abort build tag: it
// prints the error and terminates the process immediately rather than
// unwinding the stack, for callers that want a sandbox-style hard stop
// instead of a recoverable panic.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
