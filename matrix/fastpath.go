// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/katalvlaran/intmat/parallel"
	"github.com/katalvlaran/intmat/zint"
)

// EnvNoFloat disables the default float64 accelerator when set to a true
// value (any non-empty value that strconv.ParseBool does not reject as false).
const EnvNoFloat = "INTMAT_NO_FLOAT"

// floatBlockK is the inner-dimension tile of BlockedFloat64.
const floatBlockK = 128

// Accelerator is a dense float64 matrix multiplier. Mul only hands it
// operands whose every partial sum is an integer below 2^53, so any
// summation order reproduces the exact integer product.
type Accelerator interface {
	// Name identifies the implementation in logs.
	Name() string
	// Available reports whether the accelerator may be used on this machine.
	Available() bool
	// MulFloat64 sets c = a*b for row-major a (m×k), b (k×n) and c (m×n),
	// running any parallel work on s. A nil s means the accelerator's own
	// scheduler.
	MulFloat64(s parallel.Scheduler, c, a, b []float64, m, k, n int)
}

// BlockedFloat64 is a pure-Go Accelerator: row strips run in parallel and
// the inner dimension is tiled for cache reuse.
type BlockedFloat64 struct {
	sched   parallel.Scheduler
	enabled bool
}

// NewBlockedFloat64 returns an always-available accelerator whose default
// scheduler is s (parallel.Default() when s is nil). Mul always passes the
// call's scheduler, so s only matters for direct MulFloat64 calls.
func NewBlockedFloat64(s parallel.Scheduler) *BlockedFloat64 {
	if s == nil {
		s = parallel.Default()
	}

	return &BlockedFloat64{sched: s, enabled: true}
}

var defaultAccel = sync.OnceValue(func() *BlockedFloat64 {
	return &BlockedFloat64{
		sched:   parallel.Default(),
		enabled: hasVectorFloat() && !noFloatEnv(),
	}
})

// DefaultAccelerator returns the process-wide BlockedFloat64. It is
// available when the CPU has wide float64 units (AVX2+FMA on amd64, ASIMD
// on arm64) and INTMAT_NO_FLOAT is not set.
func DefaultAccelerator() Accelerator { return defaultAccel() }

func noFloatEnv() bool {
	val := os.Getenv(EnvNoFloat)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

// Name implements Accelerator.
func (*BlockedFloat64) Name() string { return "blocked-float64" }

// Available implements Accelerator.
func (f *BlockedFloat64) Available() bool { return f.enabled }

// MulFloat64 implements Accelerator.
func (f *BlockedFloat64) MulFloat64(s parallel.Scheduler, c, a, b []float64, m, k, n int) {
	if s == nil {
		s = f.sched
	}
	clear(c[:m*n])
	workers := max(s.Workers(), 1)
	tasks := min(m, workers*tasksPerWorker)
	if tasks == 0 {
		return
	}
	strip := (m + tasks - 1) / tasks
	tasks = (m + strip - 1) / strip
	s.Run(tasks, func(t int) {
		i0 := t * strip
		i1 := min(i0+strip, m)
		for kk := 0; kk < k; kk += floatBlockK {
			kEnd := min(kk+floatBlockK, k)
			for i := i0; i < i1; i++ {
				crow := c[i*n : (i+1)*n]
				for p := kk; p < kEnd; p++ {
					aip := a[i*k+p]
					if aip == 0 {
						continue
					}
					brow := b[p*n : (p+1)*n]
					for j := range crow {
						crow[j] += aip * brow[j]
					}
				}
			}
		}
	})
}

// mulFloat computes c = a*b through the accelerator. The caller guarantees
// cbits <= 53, so every entry is inline and the rounding is exact.
func mulFloat(c, a, b view, e *exec) {
	m, k, n := a.r, a.c, b.c
	af := toFloat(a)
	bf := toFloat(b)
	cf := make([]float64, m*n)
	e.accel.MulFloat64(e.sched, cf, af, bf, m, k, n)
	for i := 0; i < m; i++ {
		crow := c.row(i)
		for j := range crow {
			crow[j] = zint.FromInt64(int64(math.Round(cf[i*n+j])))
		}
	}
}

func toFloat(v view) []float64 {
	out := make([]float64, v.r*v.c)
	for i := 0; i < v.r; i++ {
		for j, x := range v.row(i) {
			s, _ := x.Small()
			out[i*v.c+j] = float64(s)
		}
	}

	return out
}
