// SPDX-License-Identifier: MIT

package matrix

// mulStrassen computes c = a*b with Strassen's 7-product recursion on
// floor halves of every dimension. Odd leftovers are fixed up classically,
// so any shape is accepted.
//
// Implementation:
//   - Stage 1: stop at the cutoff and run the word, double-word or classical
//     kernel that fits the re-profiled blocks.
//   - Stage 2: compute M1..M7 into fresh temporaries; at shallow depth the
//     seven products run as parallel tasks.
//   - Stage 3: combine into the four quadrants of c.
//   - Stage 4: peel the odd inner slice, last column and last row.
//
// Complexity:
//   - Time O(n^log2(7)) block products, Space O(n^2) temporaries per level.
func mulStrassen(c, a, b view, e *exec, depth int) {
	m, k, n := a.r, a.c, b.c
	m2, k2, n2 := m/2, k/2, n/2
	cut := e.th.StrassenCutoff
	if m2 <= cut || k2 <= cut || n2 <= cut {
		mulBase(c, a, b, e)

		return
	}

	a11, a12 := a.sub(0, 0, m2, k2), a.sub(0, k2, m2, k2)
	a21, a22 := a.sub(m2, 0, m2, k2), a.sub(m2, k2, m2, k2)
	b11, b12 := b.sub(0, 0, k2, n2), b.sub(0, n2, k2, n2)
	b21, b22 := b.sub(k2, 0, k2, n2), b.sub(k2, n2, k2, n2)

	var ms [7]view
	for i := range ms {
		ms[i] = newView(m2, n2)
	}
	sumA := func(x, y view, neg bool) view {
		s := newView(m2, k2)
		if neg {
			s.sub2(x, y)
		} else {
			s.add(x, y)
		}

		return s
	}
	sumB := func(x, y view, neg bool) view {
		t := newView(k2, n2)
		if neg {
			t.sub2(x, y)
		} else {
			t.add(x, y)
		}

		return t
	}
	next := depth + 1
	products := [7]func(){
		func() { mulStrassen(ms[0], sumA(a11, a22, false), sumB(b11, b22, false), e, next) },
		func() { mulStrassen(ms[1], sumA(a21, a22, false), b11, e, next) },
		func() { mulStrassen(ms[2], a11, sumB(b12, b22, true), e, next) },
		func() { mulStrassen(ms[3], a22, sumB(b21, b11, true), e, next) },
		func() { mulStrassen(ms[4], sumA(a11, a12, false), b22, e, next) },
		func() { mulStrassen(ms[5], sumA(a21, a11, true), sumB(b11, b12, false), e, next) },
		func() { mulStrassen(ms[6], sumA(a12, a22, true), sumB(b21, b22, false), e, next) },
	}
	if depth < e.th.StrassenParallelDepth {
		e.sched.Run(len(products), func(i int) { products[i]() })
	} else {
		for _, f := range products {
			f()
		}
	}

	c11, c12 := c.sub(0, 0, m2, n2), c.sub(0, n2, m2, n2)
	c21, c22 := c.sub(m2, 0, m2, n2), c.sub(m2, n2, m2, n2)
	c11.add(ms[0], ms[3])
	c11.subFrom(ms[4])
	c11.addTo(ms[6])
	c12.add(ms[2], ms[4])
	c21.add(ms[1], ms[3])
	c22.sub2(ms[0], ms[1])
	c22.addTo(ms[2])
	c22.addTo(ms[5])

	// Peeling.
	if k > 2*k2 {
		addMulClassical(c.sub(0, 0, 2*m2, 2*n2), a.sub(0, k-1, 2*m2, 1), b.sub(k-1, 0, 1, 2*n2))
	}
	if n > 2*n2 {
		col := c.sub(0, n-1, 2*m2, 1)
		col.zero()
		addMulClassical(col, a.sub(0, 0, 2*m2, k), b.sub(0, n-1, k, 1))
	}
	if m > 2*m2 {
		row := c.sub(m-1, 0, 1, n)
		row.zero()
		addMulClassical(row, a.sub(m-1, 0, 1, k), b)
	}
}

// mulBase runs the cheapest exact non-recursive kernel for the blocks.
func mulBase(c, a, b view, e *exec) {
	pa, pb := profileView(a), profileView(b)
	if pa.Bits == 0 || pb.Bits == 0 {
		c.zero()

		return
	}
	sign := 0
	if pa.Signed || pb.Signed {
		sign = 1
	}
	switch {
	case pa.Bits <= smallWordBits && pb.Bits <= smallWordBits:
		mulSmall(c, a, b, smallKernel(outputBits(pa, pb, a.c)), e)
	case pa.Bits+sign <= doubleWord && pb.Bits+sign <= doubleWord:
		mulDoubleWord(c, a, b, e)
	default:
		mulClassical(c, a, b, e)
	}
}
