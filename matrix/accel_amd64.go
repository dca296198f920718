// SPDX-License-Identifier: MIT

//go:build amd64

package matrix

import "golang.org/x/sys/cpu"

// hasVectorFloat reports whether wide float64 FMA hardware is present.
func hasVectorFloat() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
