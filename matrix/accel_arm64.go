// SPDX-License-Identifier: MIT

//go:build arm64

package matrix

import "golang.org/x/sys/cpu"

// hasVectorFloat reports whether wide float64 FMA hardware is present.
// ASIMD is part of the ARMv8-A base, the check is kept for consistency.
func hasVectorFloat() bool {
	return cpu.ARM64.HasASIMD
}
