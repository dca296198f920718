// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/intmat/zint"

// view is a strided window into row-major storage. Kernels read operands
// and write results through views so that block recursion never copies.
type view struct {
	data   []zint.Int
	r, c   int
	stride int
}

// newView allocates an independent r×c view.
func newView(r, c int) view {
	return view{data: make([]zint.Int, r*c), r: r, c: c, stride: c}
}

func (v view) at(i, j int) zint.Int { return v.data[i*v.stride+j] }

func (v view) set(i, j int, x zint.Int) { v.data[i*v.stride+j] = x }

// row returns row i as a slice of length v.c.
func (v view) row(i int) []zint.Int {
	if v.c == 0 {
		return nil
	}
	off := i * v.stride

	return v.data[off : off+v.c : off+v.c]
}

// sub returns the h×w window starting at (r0, c0).
func (v view) sub(r0, c0, h, w int) view {
	if h == 0 || w == 0 {
		return view{r: h, c: w, stride: v.stride}
	}

	return view{data: v.data[r0*v.stride+c0:], r: h, c: w, stride: v.stride}
}

func (v view) zero() {
	for i := 0; i < v.r; i++ {
		clear(v.row(i))
	}
}

// add sets v = a + b entrywise.
func (v view) add(a, b view) {
	for i := 0; i < v.r; i++ {
		vr, ar, br := v.row(i), a.row(i), b.row(i)
		for j := range vr {
			vr[j] = zint.Add(ar[j], br[j])
		}
	}
}

// sub2 sets v = a - b entrywise.
func (v view) sub2(a, b view) {
	for i := 0; i < v.r; i++ {
		vr, ar, br := v.row(i), a.row(i), b.row(i)
		for j := range vr {
			vr[j] = zint.Sub(ar[j], br[j])
		}
	}
}

// addTo sets v += a entrywise.
func (v view) addTo(a view) {
	for i := 0; i < v.r; i++ {
		vr, ar := v.row(i), a.row(i)
		for j := range vr {
			vr[j] = zint.Add(vr[j], ar[j])
		}
	}
}

// subFrom sets v -= a entrywise.
func (v view) subFrom(a view) {
	for i := 0; i < v.r; i++ {
		vr, ar := v.row(i), a.row(i)
		for j := range vr {
			vr[j] = zint.Sub(vr[j], ar[j])
		}
	}
}
