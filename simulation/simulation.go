// Package simulation assembles the services one integration run needs:
// a run ID, a data recorder, tracers on a shared wall clock, and the
// optional live monitor. Solvers registered with a Simulation get their
// phase traces recorded and their measurement progress published.
package simulation

import (
	"log"

	"github.com/qmclab/dcago/datarecording"
	"github.com/qmclab/dcago/hooking"
	"github.com/qmclab/dcago/monitoring"
	"github.com/qmclab/dcago/qmci"
	"github.com/qmclab/dcago/tracing"
)

// A Simulation owns the run-wide services and the registered solvers.
type Simulation struct {
	id string

	clock        *tracing.WallClock
	dataRecorder datarecording.DataRecorder
	dbTracer     *tracing.DBTracer
	timeTracer   *tracing.TotalTimeTracer
	monitor      *monitoring.Monitor

	solvers         []*qmci.Solver
	solverNameIndex map[string]int
}

// ID returns the unique ID of the run.
func (s *Simulation) ID() string {
	return s.id
}

// GetDataRecorder returns the data recorder used in the run.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the run. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetTimeTracer returns the tracer that accumulates the wall time spent
// in each integration phase.
func (s *Simulation) GetTimeTracer() *tracing.TotalTimeTracer {
	return s.timeTracer
}

// RegisterSolver attaches the run-wide services to a solver: its phase
// tasks flow into the trace table and the timing report, and the
// monitor shows its state and measurement progress.
func (s *Simulation) RegisterSolver(solver *qmci.Solver) {
	name := solver.Name()
	if _, ok := s.solverNameIndex[name]; ok {
		panic("solver " + name + " already registered")
	}

	s.solvers = append(s.solvers, solver)
	s.solverNameIndex[name] = len(s.solvers) - 1

	tracing.CollectTrace(solver, s.dbTracer)
	tracing.CollectTrace(solver, s.timeTracer)

	if s.monitor != nil {
		s.monitor.RegisterEntity(name, solver)

		total := uint64(solver.LocalMeasurements()) * uint64(solver.Iterations())
		bar := s.monitor.CreateProgressBar(name+" measurements", total)
		solver.AcceptHook(&progressHook{bar: bar})
	}
}

// GetSolverByName returns the registered solver with the given name, or
// nil if no solver has that name.
func (s *Simulation) GetSolverByName(name string) *qmci.Solver {
	index, ok := s.solverNameIndex[name]
	if !ok {
		return nil
	}

	return s.solvers[index]
}

// Terminate ends the run: unfinished trace tasks are dropped and the
// data recorder is flushed and closed.
func (s *Simulation) Terminate() {
	s.dbTracer.Terminate()

	if err := s.dataRecorder.Close(); err != nil {
		log.Panic(err)
	}
}

// progressHook mirrors one solver's measurement events onto a monitor
// progress bar. A configuration handed over counts as in progress until
// its accumulator measured it.
type progressHook struct {
	bar *monitoring.ProgressBar
}

// Func implements hooking.Hook.
func (h *progressHook) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case qmci.HookPosSweepDone:
		h.bar.IncrementInProgress(1)
	case qmci.HookPosMeasureDone:
		h.bar.MoveInProgressToFinished(1)
	}
}
