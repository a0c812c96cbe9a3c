package qmci

import (
	"io"

	"github.com/qmclab/dcago/checkpoint"
	"github.com/qmclab/dcago/random"
)

// A Walker advances one Markov chain through configuration space. A walker
// is confined to the goroutine that created it; the only cross-thread
// traffic is the hand-off to an accumulator, which the solver serializes.
type Walker interface {
	// Initialize prepares the walker for the current iteration.
	Initialize()

	// DoSweep advances the chain by one full sweep.
	DoSweep()

	// MarkThermalized records that warm-up is over and measurements may
	// be taken from now on.
	MarkThermalized()

	// IsThermalized tells if MarkThermalized has been called.
	IsThermalized() bool

	// UpdateShell prints a progress line after the done-th of total
	// units of work. The walker chooses the print frequency.
	UpdateShell(done, total int)

	// DumpConfig serializes the chain state into a resumable snapshot.
	DumpConfig() checkpoint.Buffer

	// ReadConfig restores the chain state from a snapshot. A failure
	// leaves the walker in its cold-start state.
	ReadConfig(buf checkpoint.Buffer) error

	// DeviceFingerprint returns the walker memory high-water mark in
	// bytes.
	DeviceFingerprint() int64

	// PrintSummary writes the chain statistics of the finished run.
	PrintSummary(w io.Writer)
}

// An Accumulator extracts statistical measurements from walker
// configurations and aggregates them. The solver guarantees that
// UpdateFrom and Measure never run concurrently on the same instance.
type Accumulator interface {
	// Initialize clears the partial sums for the given iteration.
	Initialize(iteration int)

	// UpdateFrom copies the walker's current configuration into the
	// accumulator. It runs on the walker's goroutine and must return as
	// soon as the copy is complete, so the walker can sweep on while
	// this accumulator measures.
	UpdateFrom(w Walker)

	// Measure evaluates all estimators on the last copied configuration.
	Measure()

	// SumTo merges this accumulator's partial sums into other.
	SumTo(other Accumulator)

	// Finalize turns the aggregated sums into final estimates. The
	// solver calls it only on the shared accumulator.
	Finalize()

	// DeviceFingerprint returns the accumulator memory high-water mark
	// in bytes.
	DeviceFingerprint() int64
}

// A Method binds one concrete Monte Carlo method to the threaded solver.
// It constructs the per-thread walkers and accumulators and owns the
// run-wide accumulator all partial results merge into, together with
// whatever shared data the method needs.
type Method interface {
	// NewWalker creates the walker for one walker slot. The stream is
	// owned exclusively by the returned walker.
	NewWalker(stream *random.Stream, slot int) (Walker, error)

	// NewAccumulator creates the accumulator for one accumulator slot.
	NewAccumulator(index int) (Accumulator, error)

	// SharedAccumulator returns the merge target shared by all threads.
	SharedAccumulator() Accumulator

	// ComputeErrorBars estimates the statistical errors of the merged
	// results. The solver calls it once, on the last iteration.
	ComputeErrorBars()

	// StaticFingerprint returns the memory in bytes shared by all
	// accumulators of the method.
	StaticFingerprint() int64

	// Finalize closes the iteration and returns the convergence metric
	// that drives the outer self-consistency loop.
	Finalize() (float64, error)
}

// Parameters supplies the scalar controls of one threaded integration.
// params.Parameters satisfies this interface.
type Parameters interface {
	Seed() int64
	WarmUpSweeps() int
	Measurements() int
	Walkers() int
	Accumulators() int
	SharedWalkAndAccumulationThread() bool
	FixMeasPerWalker() bool
	ConfigurationReadDir() string
	ConfigurationWriteDir() string
	Iterations() int
}
