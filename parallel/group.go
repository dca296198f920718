// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group is a Scheduler that starts at most Limit goroutines per Run call.
// Each call gets its own errgroup, so nested calls never share a limit.
type Group struct {
	limit int
}

// NewGroup returns a Group running at most limit tasks at once;
// limit <= 0 means GOMAXPROCS.
func NewGroup(limit int) *Group {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	return &Group{limit: limit}
}

// Workers implements Scheduler.
func (g *Group) Workers() int { return g.limit }

// Run implements Scheduler.
func (g *Group) Run(n int, task func(i int)) {
	if n <= 0 {
		return
	}
	if g.limit == 1 || n == 1 {
		Sequential{}.Run(n, task)

		return
	}
	var eg errgroup.Group
	eg.SetLimit(g.limit)
	for i := range n {
		eg.Go(func() error {
			task(i)

			return nil
		})
	}
	_ = eg.Wait() // tasks never fail
}
