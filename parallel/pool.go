// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many Run calls. Workers
// are spawned once at creation.
//
// The goroutine calling Run always claims work itself and only waits for
// indices already claimed by other workers. A task may therefore call Run
// on the same Pool: if every worker is busy, the nested call simply runs
// on its caller.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers; numWorkers <= 0 means
// GOMAXPROCS. The caller of Run counts as one of the workers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers - 1 {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// Workers implements Scheduler.
func (p *Pool) Workers() int { return p.numWorkers }

// Close stops the workers. Run on a closed pool falls back to sequential
// execution. Close must not race with Run; calling it twice is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run implements Scheduler using atomic work claiming.
func (p *Pool) Run(n int, task func(i int)) {
	if n <= 0 {
		return
	}
	helpers := min(p.numWorkers, n) - 1
	if helpers == 0 || p.closed.Load() {
		Sequential{}.Run(n, task)

		return
	}

	var next atomic.Int64
	var done sync.WaitGroup
	done.Add(n)
	claim := func() {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			task(i)
			done.Done()
		}
	}
	for range helpers {
		select {
		case p.workC <- claim:
		default:
			// Queue full: the caller picks up the slack.
		}
	}
	claim()
	done.Wait()
}
