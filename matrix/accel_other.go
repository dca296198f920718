// SPDX-License-Identifier: MIT

//go:build !amd64 && !arm64

package matrix

func hasVectorFloat() bool { return false }
