// SPDX-License-Identifier: MIT

package matrix

// aliases reports whether dst and src share storage.
func aliases(dst, src *Dense) bool {
	if dst == src {
		return true
	}
	if len(dst.data) == 0 || len(src.data) == 0 {
		return false
	}

	return &dst.data[0] == &src.data[0]
}

// adopt transfers ownership of tmp's storage into dst. tmp must not be
// used afterwards.
func (m *Dense) adopt(tmp *Dense) {
	m.data = tmp.data
	tmp.data = nil
}
