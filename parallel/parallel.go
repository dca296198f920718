// SPDX-License-Identifier: MIT

// Package parallel provides the task schedulers used by the matrix kernels.
//
// A Scheduler runs n independent indexed tasks and returns when all of them
// have finished. Kernels only ever write disjoint outputs from different
// tasks, so the result of a computation never depends on which Scheduler
// ran it.
//
// Three implementations are provided:
//
//   - Sequential runs every task in the calling goroutine.
//   - Pool keeps persistent worker goroutines and lets the caller take part
//     in the work, so tasks may themselves call Run on the same Pool.
//   - Group starts a bounded set of goroutines per call through
//     golang.org/x/sync/errgroup.
package parallel

import (
	"runtime"
	"sync"
)

// Scheduler runs indexed tasks.
type Scheduler interface {
	// Run calls task(i) for every i in [0, n) and blocks until all calls
	// returned. Calls may run concurrently and in any order.
	Run(n int, task func(i int))
	// Workers reports the degree of parallelism Run may use.
	Workers() int
}

// Sequential is a Scheduler that runs tasks one after another in the caller.
type Sequential struct{}

// Run implements Scheduler.
func (Sequential) Run(n int, task func(i int)) {
	for i := 0; i < n; i++ {
		task(i)
	}
}

// Workers implements Scheduler.
func (Sequential) Workers() int { return 1 }

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide Pool sized to GOMAXPROCS. It is created
// on first use and never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(runtime.GOMAXPROCS(0))
	})

	return defaultPool
}

var (
	_ Scheduler = Sequential{}
	_ Scheduler = (*Pool)(nil)
	_ Scheduler = (*Group)(nil)
)
