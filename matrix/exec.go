// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/intmat/parallel"

// tasksPerWorker oversubscribes row blocks so uneven rows balance out.
const tasksPerWorker = 4

// exec carries the resolved configuration of one Mul call into the kernels.
type exec struct {
	th      Thresholds
	sched   parallel.Scheduler
	workers int
	accel   Accelerator
	fast    bool // accelerator present and available
}

func newExec(o Options) *exec {
	w := o.sched.Workers()
	if w < 1 {
		w = 1
	}

	return &exec{
		th:      o.th,
		sched:   o.sched,
		workers: w,
		accel:   o.accel,
		fast:    o.accel != nil && o.accel.Available(),
	}
}

// rowTasks splits [0, rows) into contiguous blocks and runs fn on each
// block as an independent task.
func (e *exec) rowTasks(rows int, fn func(i0, i1 int)) {
	if rows <= 0 {
		return
	}
	tasks := min(rows, e.workers*tasksPerWorker)
	chunk := (rows + tasks - 1) / tasks
	tasks = (rows + chunk - 1) / chunk
	e.sched.Run(tasks, func(t int) {
		i0 := t * chunk
		fn(i0, min(i0+chunk, rows))
	})
}
