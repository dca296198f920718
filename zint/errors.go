// SPDX-License-Identifier: MIT

package zint

import "errors"

// ErrSyntax is returned by Parse when the input is not a base-10 integer.
var ErrSyntax = errors.New("zint: invalid integer syntax")
