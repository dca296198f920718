// SPDX-License-Identifier: MIT

package parallel_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/parallel"
)

func schedulers() map[string]parallel.Scheduler {
	return map[string]parallel.Scheduler{
		"sequential": parallel.Sequential{},
		"pool1":      parallel.New(1),
		"pool4":      parallel.New(4),
		"default":    parallel.Default(),
		"group3":     parallel.NewGroup(3),
	}
}

func TestRunCoversEveryIndexOnce(t *testing.T) {
	t.Parallel()

	for name, s := range schedulers() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 7, 100, 1000} {
				hits := make([]int32, n)
				s.Run(n, func(i int) { atomic.AddInt32(&hits[i], 1) })
				for i, h := range hits {
					require.Equal(t, int32(1), h, "n=%d i=%d", n, i)
				}
			}
		})
	}
}

// TestNestedRunDoesNotDeadlock runs Run from inside tasks of the same
// scheduler, two levels deep, with far more tasks than workers.
func TestNestedRunDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	for name, s := range schedulers() {
		t.Run(name, func(t *testing.T) {
			var total atomic.Int64
			s.Run(16, func(int) {
				s.Run(8, func(int) {
					s.Run(4, func(int) { total.Add(1) })
				})
			})
			require.Equal(t, int64(16*8*4), total.Load())
		})
	}
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, parallel.Sequential{}.Workers())
	require.Equal(t, 4, parallel.New(4).Workers())
	require.Equal(t, runtime.GOMAXPROCS(0), parallel.New(0).Workers())
	require.Equal(t, runtime.GOMAXPROCS(0), parallel.NewGroup(-1).Workers())
	require.Same(t, parallel.Default(), parallel.Default())
}

func TestClosedPoolFallsBack(t *testing.T) {
	t.Parallel()

	p := parallel.New(4)
	p.Close()
	p.Close() // idempotent

	sum := 0
	p.Run(10, func(i int) { sum += i }) // sequential: no race
	require.Equal(t, 45, sum)
}

func BenchmarkPoolOverhead(b *testing.B) {
	p := parallel.New(0)
	defer p.Close()
	var sink atomic.Int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Run(64, func(j int) { sink.Add(int64(j)) })
	}
}
