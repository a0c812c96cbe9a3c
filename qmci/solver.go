// Package qmci implements the threaded core of quantum Monte Carlo
// integration: a static plan of walker and accumulator thread slots, a
// synchronized hand-off queue connecting the two roles, work partitioning
// across walkers, and checkpointing of walker configurations across runs.
//
// The physics lives behind the Walker, Accumulator, and Method interfaces;
// the package only orchestrates them.
package qmci

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/qmclab/dcago/checkpoint"
	"github.com/qmclab/dcago/hooking"
	"github.com/qmclab/dcago/id"
	"github.com/qmclab/dcago/random"
	"github.com/qmclab/dcago/threadpool"
	"github.com/qmclab/dcago/tracing"
	"github.com/qmclab/dcago/workload"
)

// Hook positions of the solver. The Item of each context is the index of
// the thread slot that triggered the hook, except for HookPosWalkerDone,
// whose Item is the walker index.
var (
	// HookPosSweepDone triggers after each post-thermalization sweep.
	HookPosSweepDone = &hooking.HookPos{Name: "SweepDone"}

	// HookPosMeasureDone triggers after each measurement extraction.
	HookPosMeasureDone = &hooking.HookPos{Name: "MeasureDone"}

	// HookPosMergeDone triggers after a thread merged its partial sums
	// into the shared accumulator.
	HookPosMergeDone = &hooking.HookPos{Name: "MergeDone"}

	// HookPosWalkerDone triggers after a walker completed all its
	// measurements.
	HookPosWalkerDone = &hooking.HookPos{Name: "WalkerDone"}
)

// A Solver runs the threaded Monte Carlo integration of one Method. The
// typical lifetime is one Solver per process, cycled through
// Initialize-Integrate-Finalize once per self-consistency iteration.
type Solver struct {
	*hooking.HookableBase
	name string

	method Method
	params Parameters
	conc   workload.Concurrency
	pool   *threadpool.Pool
	store  *checkpoint.Store
	out    io.Writer
	log    io.Writer

	plan    ThreadPlan
	streams []*random.Stream
	slots   []*accumulatorSlot
	queue   *handoffQueue
	meas    *workload.Counter

	mergeMu sync.Mutex

	iteration         int
	localMeasurements int
	totalTime         float64

	configDump         []checkpoint.Buffer
	walkerFingerprints []int64
	accumFingerprints  []int64
}

// A Builder configures and creates threaded solvers.
type Builder struct {
	name   string
	method Method
	params Parameters
	conc   workload.Concurrency
	pool   *threadpool.Pool
	store  *checkpoint.Store
	out    io.Writer
	log    io.Writer
}

// MakeBuilder creates a Builder with single-process defaults.
func MakeBuilder() Builder {
	return Builder{
		name: "solver",
		conc: workload.NewConcurrency(0, 1),
		out:  os.Stdout,
		log:  os.Stderr,
	}
}

// WithName sets the name the solver reports to hooks and tracers.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithMethod sets the Monte Carlo method to integrate. Required.
func (b Builder) WithMethod(m Method) Builder {
	b.method = m
	return b
}

// WithParameters sets the integration controls. Required.
func (b Builder) WithParameters(p Parameters) Builder {
	b.params = p
	return b
}

// WithConcurrency places the solver in a distributed process grid.
func (b Builder) WithConcurrency(c workload.Concurrency) Builder {
	b.conc = c
	return b
}

// WithThreadPool sets the pool the runner tasks execute on. The default
// is the process-wide shared pool.
func (b Builder) WithThreadPool(p *threadpool.Pool) Builder {
	b.pool = p
	return b
}

// WithCheckpointStore sets the store that persists walker configurations.
func (b Builder) WithCheckpointStore(s *checkpoint.Store) Builder {
	b.store = s
	return b
}

// WithOutput redirects the run banners and progress prints.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.out = w
	return b
}

// WithLog redirects the diagnostic messages.
func (b Builder) WithLog(w io.Writer) Builder {
	b.log = w
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.method == nil {
		panic("qmci: a method is required")
	}

	if b.params == nil {
		panic("qmci: parameters are required")
	}

	if b.params.Walkers() < 1 || b.params.Accumulators() < 1 {
		panic(fmt.Sprintf(
			"qmci: both the number of walkers and the number of accumulators "+
				"must be at least 1, got %d and %d",
			b.params.Walkers(), b.params.Accumulators()))
	}
}

// Build creates the solver. It lays out the thread plan, seeds one random
// stream per walker, restores dumped walker configurations when the
// configured read directory holds a checkpoint, and enlarges the thread
// pool to the plan size.
func (b Builder) Build() *Solver {
	b.parametersMustBeValid()

	s := &Solver{
		HookableBase: hooking.NewHookableBase(),
		name:         b.name,
		method:       b.method,
		params:       b.params,
		conc:         b.conc,
		pool:         b.pool,
		store:        b.store,
		out:          b.out,
		log:          b.log,
	}

	s.plan = MakeThreadPlan(
		b.params.Walkers(),
		b.params.Accumulators(),
		b.params.SharedWalkAndAccumulationThread(),
	)

	s.streams = random.NewPool(
		b.conc.Rank(), b.conc.Size(), b.params.Seed(), s.plan.Walkers())

	s.slots = make([]*accumulatorSlot, s.plan.Accumulators())
	for i := range s.slots {
		s.slots[i] = newAccumulatorSlot()
	}

	s.queue = newHandoffQueue(s.plan.Walkers())
	s.meas = workload.NewCounter(0)

	if s.pool == nil {
		s.pool = threadpool.Default()
	}
	s.pool.Enlarge(s.plan.Size())

	if s.store == nil {
		s.store = checkpoint.NewStore(b.conc.Rank()).WithLog(s.log)
	}
	s.configDump = s.store.Read(
		b.params.ConfigurationReadDir(), s.plan.Walkers())

	s.walkerFingerprints = make([]int64, s.plan.Walkers())
	s.accumFingerprints = make([]int64, s.plan.Accumulators())

	s.localMeasurements = b.conc.ProcessShare(b.params.Measurements())

	return s
}

// Name returns the name the solver reports to hooks and tracers.
func (s *Solver) Name() string {
	return s.name
}

// Plan returns the thread plan of the solver.
func (s *Solver) Plan() ThreadPlan {
	return s.plan
}

// LocalMeasurements returns how many measurements this process performs
// per iteration.
func (s *Solver) LocalMeasurements() int {
	return s.localMeasurements
}

// Iterations returns the number of self-consistency iterations the
// solver is configured for.
func (s *Solver) Iterations() int {
	return s.params.Iterations()
}

// Initialize prepares the solver for one self-consistency iteration: it
// resets the finished-walker count, the shared measurement counter, and
// every accumulator mailbox, so the same solver can run any number of
// iterations back to back.
func (s *Solver) Initialize(iteration int) {
	s.iteration = iteration
	s.localMeasurements = s.conc.ProcessShare(s.params.Measurements())

	s.queue.reset()
	s.meas.Reset(s.localMeasurements)
	for _, slot := range s.slots {
		slot.reset()
	}

	s.method.SharedAccumulator().Initialize(iteration)
}

// Integrate runs one full threaded integration: every plan slot becomes a
// task on the thread pool, walkers hand thermalized configurations to
// accumulators through the queue, and the call blocks until every task
// has completed and all partial sums are merged. The returned error is
// the first runner failure observed; checkpoint problems never surface
// here, they only degrade walkers to cold starts.
func (s *Solver) Integrate() error {
	if s.conc.IsFirst() {
		fmt.Fprintf(s.out, "\nthreaded QMC integration starts at %s\n\n",
			time.Now().Format(time.ANSIC))
		fmt.Fprint(s.out, s.plan)
		fmt.Fprintf(s.out, "\nmeasurements on this process: %d\n",
			s.localMeasurements)
	}

	start := time.Now()

	futures := make([]*threadpool.Future, s.plan.Size())
	for slot := 0; slot < s.plan.Size(); slot++ {
		var run func() error

		switch s.plan.Role(slot) {
		case RoleWalker:
			run = func() error { return s.runWalker(slot) }
		case RoleAccumulator:
			run = func() error { return s.runAccumulator(slot) }
		case RoleWalkerAndAccumulator:
			run = func() error { return s.runWalkerAndAccumulator(slot) }
		default:
			log.Panicf("qmci: slot %d has an undefined role", slot)
		}

		futures[slot] = s.pool.Enqueue(run)
	}

	for _, f := range futures {
		if err := f.Wait(); err != nil {
			return err
		}
	}

	if got := s.queue.finishedWalkers(); got != s.plan.Walkers() {
		log.Panicf("qmci: only %d of %d walkers finished",
			got, s.plan.Walkers())
	}

	s.totalTime = time.Since(start).Seconds()

	if s.conc.IsFirst() {
		s.printFingerprints(s.out)
	}

	s.method.SharedAccumulator().Finalize()

	return nil
}

// Finalize completes the current iteration. On the last one it computes
// the statistical error bars before reducing and dumps every walker
// configuration to the write directory after. It returns the convergence
// metric of the self-consistency loop.
func (s *Solver) Finalize() (float64, error) {
	if s.lastIteration() {
		s.method.ComputeErrorBars()
	}

	metric, err := s.method.Finalize()
	if err != nil {
		return 0, err
	}

	if s.lastIteration() {
		s.store.Write(s.params.ConfigurationWriteDir(), s.configDump)
	}

	return metric, nil
}

func (s *Solver) lastIteration() bool {
	return s.iteration == s.params.Iterations()-1
}

// runWalker is the loop of a pure walker slot. It warms up its chain,
// then alternates between sweeping and handing the configuration to
// whichever accumulator is available, and triggers the shutdown drain
// when it is the last walker to finish.
func (s *Solver) runWalker(slot int) error {
	walkerIndex := s.plan.WalkerIndex(slot)

	walker, err := s.method.NewWalker(s.streams[walkerIndex], slot)
	if err != nil {
		return fmt.Errorf("constructing walker %d: %w", walkerIndex, err)
	}

	s.initializeAndWarmUp(walker, slot, walkerIndex)

	s.forEachLocalMeasurement(walkerIndex,
		func(measID, totalMeas int, print bool) {
			what := measurementWhat(measID)

			s.trace("walker updating", what, slot, walker.DoSweep)
			s.invoke(HookPosSweepDone, slot)

			if print {
				walker.UpdateShell(measID, totalMeas)
			}

			s.trace("walker waiting", what, slot, func() {
				target := s.queue.pop()
				s.slots[target].deliver(walker)
			})
		})

	s.finishWalker(walkerIndex)

	if slot == 0 && s.conc.IsFirst() {
		fmt.Fprintf(s.out, "\nQMC integration ends at %s\n\n",
			time.Now().Format(time.ANSIC))
		walker.PrintSummary(s.out)
	}

	s.walkerFingerprints[walkerIndex] = walker.DeviceFingerprint()
	s.configDump[walkerIndex] = walker.DumpConfig()

	return nil
}

// runAccumulator is the loop of a pure accumulator slot. It circulates
// its slot index through the hand-off queue until the walkers are done,
// then merges its partial sums into the shared accumulator.
func (s *Solver) runAccumulator(slot int) error {
	accumIndex := s.plan.AccumIndex(slot)

	acc, err := s.method.NewAccumulator(accumIndex)
	if err != nil {
		return fmt.Errorf("constructing accumulator %d: %w", accumIndex, err)
	}

	as := s.slots[accumIndex]
	as.bind(acc)
	acc.Initialize(s.iteration)

	for round := 0; s.queue.push(accumIndex); round++ {
		what := fmt.Sprintf("round_%d", round)

		claimed := false
		s.trace("accumulator waiting", what, slot, func() {
			claimed = as.awaitDelivery()
		})
		if !claimed {
			break
		}

		s.trace("accumulating", what, slot, acc.Measure)
		s.invoke(HookPosMeasureDone, slot)
	}

	s.merge(acc, slot)
	s.accumFingerprints[accumIndex] = acc.DeviceFingerprint()

	return nil
}

// runWalkerAndAccumulator is the loop of a fused slot. It bypasses the
// queue: each sweep feeds the slot's private accumulator directly. The
// slot still participates in the finished-walker protocol so that pure
// accumulators of mixed plans shut down correctly.
func (s *Solver) runWalkerAndAccumulator(slot int) error {
	walkerIndex := s.plan.WalkerIndex(slot)
	accumIndex := s.plan.AccumIndex(slot)

	walker, err := s.method.NewWalker(s.streams[walkerIndex], slot)
	if err != nil {
		return fmt.Errorf("constructing walker %d: %w", walkerIndex, err)
	}

	acc, err := s.method.NewAccumulator(accumIndex)
	if err != nil {
		return fmt.Errorf("constructing accumulator %d: %w", accumIndex, err)
	}
	s.slots[accumIndex].bind(acc)
	acc.Initialize(s.iteration)

	s.initializeAndWarmUp(walker, slot, walkerIndex)

	s.forEachLocalMeasurement(walkerIndex,
		func(measID, totalMeas int, print bool) {
			what := measurementWhat(measID)

			s.trace("walker updating", what, slot, walker.DoSweep)
			s.invoke(HookPosSweepDone, slot)

			s.trace("accumulating", what, slot, func() {
				acc.UpdateFrom(walker)
				acc.Measure()
			})
			s.invoke(HookPosMeasureDone, slot)

			if print {
				walker.UpdateShell(measID, totalMeas)
			}
		})

	s.finishWalker(walkerIndex)

	if slot == 0 && s.conc.IsFirst() {
		fmt.Fprintf(s.out, "\nQMC integration ends at %s\n\n",
			time.Now().Format(time.ANSIC))
		walker.PrintSummary(s.out)
	}

	s.merge(acc, slot)

	s.walkerFingerprints[walkerIndex] = walker.DeviceFingerprint()
	s.accumFingerprints[accumIndex] = acc.DeviceFingerprint()
	s.configDump[walkerIndex] = walker.DumpConfig()

	return nil
}

// initializeAndWarmUp restores the walker from its checkpoint slot when
// one was loaded, then thermalizes the chain. Only slot 0 reports warm-up
// progress.
func (s *Solver) initializeAndWarmUp(walker Walker, slot, walkerIndex int) {
	if len(s.configDump[walkerIndex]) > 0 {
		if err := walker.ReadConfig(s.configDump[walkerIndex]); err != nil {
			fmt.Fprintf(s.log,
				"qmci: walker %d starts cold, dumped configuration unusable: %v\n",
				walkerIndex, err)
		}
	}

	walker.Initialize()

	if slot == 0 && s.conc.IsFirst() {
		fmt.Fprintf(s.out, "\nwarm-up starts\n\n")
	}

	s.trace("thermalization", "warm_up", slot, func() {
		sweeps := s.params.WarmUpSweeps()
		for i := 0; i < sweeps; i++ {
			walker.DoSweep()
			if slot == 0 {
				walker.UpdateShell(i, sweeps)
			}
		}
	})

	walker.MarkThermalized()

	if slot == 0 && s.conc.IsFirst() {
		fmt.Fprintf(s.out, "\nwarm-up ends\n\n")
	}
}

// forEachLocalMeasurement drives f once per measurement this walker owns.
// Under the fixed policy each walker loops over a private share and only
// walker 0 reports progress. Under the shared policy every walker claims
// indices from the run-wide counter until it is exhausted, so faster
// chains take over work from slower ones, and every walker reports its
// own claims.
func (s *Solver) forEachLocalMeasurement(
	walkerIndex int,
	f func(measID, totalMeas int, print bool),
) {
	if s.params.FixMeasPerWalker() {
		count, primary := workload.PerWalker(
			s.localMeasurements, s.plan.Walkers(), walkerIndex, true)
		for measID := 0; measID < count; measID++ {
			f(measID, count, primary)
		}

		return
	}

	for {
		measID, ok := s.meas.Next()
		if !ok {
			return
		}

		f(measID, s.localMeasurements, true)
	}
}

// finishWalker counts one walker as done and, for the last one, runs the
// shutdown protocol: every still-queued accumulator slot receives exactly
// one termination signal.
func (s *Solver) finishWalker(walkerIndex int) {
	if drained, last := s.queue.walkerFinished(); last {
		for _, idx := range drained {
			s.slots[idx].notifyDone()
		}
	}

	s.invoke(HookPosWalkerDone, walkerIndex)
}

// merge folds one thread's partial sums into the shared accumulator. The
// merge lock is separate from the queue lock: a slow merge must not block
// hand-offs still in flight.
func (s *Solver) merge(acc Accumulator, slot int) {
	s.mergeMu.Lock()
	acc.SumTo(s.method.SharedAccumulator())
	s.mergeMu.Unlock()

	s.invoke(HookPosMergeDone, slot)
}

func (s *Solver) invoke(pos *hooking.HookPos, item int) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(hooking.HookCtx{Domain: s, Pos: pos, Item: item})
}

// trace wraps one phase of a runner in a task so attached tracers can
// profile where the threads spend their time.
func (s *Solver) trace(kind, what string, slot int, f func()) {
	if s.NumHooks() == 0 {
		f()
		return
	}

	taskID := id.Generate()
	tracing.StartTaskWithSpecificLocation(
		taskID, "", s, kind, what,
		fmt.Sprintf("%s.slot_%d", s.name, slot), nil)

	f()

	tracing.EndTask(taskID, s)
}

func measurementWhat(measID int) string {
	return fmt.Sprintf("measurement_%d", measID)
}

func (s *Solver) printFingerprints(w io.Writer) {
	fmt.Fprintf(w, "\nQMC integration took %.2f s\n", s.totalTime)

	fmt.Fprintf(w, "\nwalker fingerprints [MB]:\n")
	for i, fp := range s.walkerFingerprints {
		fmt.Fprintf(w, "  %2d: %.3f\n", i, float64(fp)/1e6)
	}

	fmt.Fprintf(w, "accumulator fingerprints [MB]:\n")
	for i, fp := range s.accumFingerprints {
		fmt.Fprintf(w, "  %2d: %.3f\n", i, float64(fp)/1e6)
	}

	fmt.Fprintf(w, "static accumulator fingerprint [MB]: %.3f\n",
		float64(s.method.StaticFingerprint())/1e6)
}
