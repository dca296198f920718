// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Mul. This file defines:
//   - Thresholds (named, independently overridable kernel cut-overs),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Thresholds only affect speed, never results.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"log/slog"

	"github.com/katalvlaran/intmat/parallel"
)

// ---------- Defaults (single source of truth) ----------

// Small-entry regime.
const (
	// DefaultSmallRowsCutoff: fewer rows than this always use a word accumulator.
	DefaultSmallRowsCutoff = 9
	// DefaultSmallRowsInnerCutoff: rows+inner below this always use a word accumulator.
	DefaultSmallRowsInnerCutoff = 20
	// DefaultSmallLargeDim: above this dimension Strassen / multi-modular are considered.
	DefaultSmallLargeDim = 1000
	// DefaultSmallPerWorker: extra dimension each worker adds before switching away
	// from the word accumulators.
	DefaultSmallPerWorker = 300
	// DefaultMultiModSmallDim: base dimension for multi-modular on small entries
	// whose output does not fit one word.
	DefaultMultiModSmallDim = 4000
)

// Double-word and huge-entry regimes.
const (
	// DefaultDoubleWordDim: base dimension above which multi-modular may win
	// over the double-word accumulator.
	DefaultDoubleWordDim = 300
	// DefaultMultiModBitsFactor: huge entries go multi-modular when
	// dim >= factor * bitlen(cbits).
	DefaultMultiModBitsFactor = 3

	DefaultWaksmanMaxDim    = 20
	DefaultWaksmanMinBits2  = 5000
	DefaultWaksmanMinBits3  = 3000
	DefaultWaksmanMinBits4  = 1000
	DefaultWaksmanMinBits12 = 500
	DefaultWaksmanRatio2    = 1.1
	DefaultWaksmanRatio     = 1.6

	DefaultStrassenMinBits = 500
	DefaultStrassenMinDim  = 8
)

// Recursion and fast path.
const (
	// DefaultStrassenCutoff: recursion stops when a half dimension is at or below it.
	DefaultStrassenCutoff = 64
	// DefaultStrassenParallelDepth: levels whose seven products run as parallel tasks.
	DefaultStrassenParallelDepth = 2
	// DefaultFloatMinDim: the float64 path needs dim strictly above this.
	DefaultFloatMinDim = 50
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid    = "matrix: WithWorkers: n must be > 0"
	panicSchedulerNil      = "matrix: WithScheduler: scheduler must be non-nil"
	panicKernelInvalid     = "matrix: WithKernel: unknown kernel"
	panicThresholdsInvalid = "matrix: WithThresholds: cutoffs must be >= 0 and ratios >= 1"
)

// Thresholds holds the dimension and bit-width cut-overs used by Select.
// Every field only affects performance.
type Thresholds struct {
	SmallRowsCutoff      int
	SmallRowsInnerCutoff int
	SmallLargeDim        int
	SmallPerWorker       int
	MultiModSmallDim     int

	DoubleWordDim      int
	MultiModBitsFactor int

	WaksmanMaxDim    int
	WaksmanMinBits2  int
	WaksmanMinBits3  int
	WaksmanMinBits4  int
	WaksmanMinBits12 int
	WaksmanRatio2    float64
	WaksmanRatio     float64

	StrassenMinBits       int
	StrassenMinDim        int
	StrassenCutoff        int
	StrassenParallelDepth int

	FloatMinDim int
}

// DefaultThresholds returns the built-in tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SmallRowsCutoff:       DefaultSmallRowsCutoff,
		SmallRowsInnerCutoff:  DefaultSmallRowsInnerCutoff,
		SmallLargeDim:         DefaultSmallLargeDim,
		SmallPerWorker:        DefaultSmallPerWorker,
		MultiModSmallDim:      DefaultMultiModSmallDim,
		DoubleWordDim:         DefaultDoubleWordDim,
		MultiModBitsFactor:    DefaultMultiModBitsFactor,
		WaksmanMaxDim:         DefaultWaksmanMaxDim,
		WaksmanMinBits2:       DefaultWaksmanMinBits2,
		WaksmanMinBits3:       DefaultWaksmanMinBits3,
		WaksmanMinBits4:       DefaultWaksmanMinBits4,
		WaksmanMinBits12:      DefaultWaksmanMinBits12,
		WaksmanRatio2:         DefaultWaksmanRatio2,
		WaksmanRatio:          DefaultWaksmanRatio,
		StrassenMinBits:       DefaultStrassenMinBits,
		StrassenMinDim:        DefaultStrassenMinDim,
		StrassenCutoff:        DefaultStrassenCutoff,
		StrassenParallelDepth: DefaultStrassenParallelDepth,
		FloatMinDim:           DefaultFloatMinDim,
	}
}

func (t Thresholds) valid() bool {
	ints := []int{
		t.SmallRowsCutoff, t.SmallRowsInnerCutoff, t.SmallLargeDim, t.SmallPerWorker,
		t.MultiModSmallDim, t.DoubleWordDim, t.MultiModBitsFactor, t.WaksmanMaxDim,
		t.WaksmanMinBits2, t.WaksmanMinBits3, t.WaksmanMinBits4, t.WaksmanMinBits12,
		t.StrassenMinBits, t.StrassenMinDim, t.StrassenCutoff, t.StrassenParallelDepth,
		t.FloatMinDim,
	}
	for _, v := range ints {
		if v < 0 {
			return false
		}
	}

	return t.WaksmanRatio2 >= 1 && t.WaksmanRatio >= 1
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	th     Thresholds
	sched  parallel.Scheduler
	accel  Accelerator
	kernel Kernel
	logger *slog.Logger
}

// WithThresholds replaces the whole tuning struct. Start from
// DefaultThresholds() and override individual fields.
// Panics when a cutoff is negative or a ratio is below 1.
func WithThresholds(t Thresholds) Option {
	if !t.valid() {
		panic(panicThresholdsInvalid)
	}

	return func(o *Options) { o.th = t }
}

// WithScheduler runs kernel tasks on s. Panics on nil.
func WithScheduler(s parallel.Scheduler) Option {
	if s == nil {
		panic(panicSchedulerNil)
	}

	return func(o *Options) { o.sched = s }
}

// WithWorkers bounds parallelism to n goroutines per task batch using an
// errgroup-backed scheduler. n == 1 runs everything in the caller.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}
	if n == 1 {
		return func(o *Options) { o.sched = parallel.Sequential{} }
	}
	g := parallel.NewGroup(n)

	return func(o *Options) { o.sched = g }
}

// WithAccelerator sets the float64 accelerator. nil disables the float path.
func WithAccelerator(a Accelerator) Option {
	return func(o *Options) { o.accel = a }
}

// WithKernel forces k instead of Select. Mul returns ErrKernelPrecondition
// when k cannot represent the operands exactly. KernelAuto restores
// automatic selection.
func WithKernel(k Kernel) Option {
	if k < KernelAuto || k > KernelFloat {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// WithLogger enables one debug record per Mul call. nil keeps Mul silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		th:     DefaultThresholds(),
		sched:  parallel.Default(),
		accel:  DefaultAccelerator(),
		kernel: KernelAuto,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
