package pimc

import (
	"fmt"
	"io"
	"math"

	"github.com/qmclab/dcago/checkpoint"
	"github.com/qmclab/dcago/qmci"
	"github.com/qmclab/dcago/random"
	"github.com/sugawarayuuta/sonnet"
)

// A Walker samples the discretized path integral with single-slice
// Metropolis moves. Each walker owns its random stream and is driven by
// exactly one solver goroutine.
type Walker struct {
	model  Model
	stream *random.Stream
	slot   int
	out    io.Writer

	path        []float64
	sweeps      int64
	attempts    int64
	acceptances int64
	thermalized bool
}

var _ qmci.Walker = (*Walker)(nil)

func newWalker(model Model, stream *random.Stream, slot int, out io.Writer) *Walker {
	return &Walker{
		model:  model,
		stream: stream,
		slot:   slot,
		out:    out,
	}
}

// Initialize prepares the walker for the next iteration. A chain
// restored from a checkpoint or carried over from the previous
// iteration keeps its positions; only a fresh walker draws a random
// start.
func (w *Walker) Initialize() {
	if w.path == nil {
		w.path = make([]float64, w.model.TimeSlices)
		for j := range w.path {
			w.path[j] = (2*w.stream.Uniform() - 1) * w.model.XMax
		}
	}

	w.thermalized = false
}

// DoSweep attempts one Metropolis move per time slice.
func (w *Walker) DoSweep() {
	for range w.path {
		w.metropolisMove()
	}
	w.sweeps++
}

// metropolisMove displaces one randomly chosen slice and accepts the
// move with the heat-bath probability of the action change. Neighbors
// are periodic in imaginary time.
func (w *Walker) metropolisMove() {
	m := len(w.path)
	j := w.stream.Intn(m)

	prev, next := j-1, j+1
	if prev < 0 {
		prev = m - 1
	}
	if next == m {
		next = 0
	}

	trial := w.path[j] + (2*w.stream.Uniform()-1)*w.model.StepSize

	dt := w.model.TimeStep()
	deltaE := w.model.Potential(trial) - w.model.Potential(w.path[j]) +
		0.5*sq((w.path[next]-trial)/dt) +
		0.5*sq((trial-w.path[prev])/dt) -
		0.5*sq((w.path[next]-w.path[j])/dt) -
		0.5*sq((w.path[j]-w.path[prev])/dt)

	w.attempts++
	if deltaE < 0 || math.Exp(-dt*deltaE) > w.stream.Uniform() {
		w.path[j] = trial
		w.acceptances++
	}
}

func sq(x float64) float64 {
	return x * x
}

// MarkThermalized ends the warm-up phase.
func (w *Walker) MarkThermalized() {
	w.thermalized = true
}

// IsThermalized tells if the warm-up phase is over.
func (w *Walker) IsThermalized() bool {
	return w.thermalized
}

// UpdateShell prints a progress line roughly every tenth of the total.
func (w *Walker) UpdateShell(done, total int) {
	if total < 1 {
		return
	}

	stride := total / 10
	if stride < 1 {
		stride = 1
	}

	if done%stride != 0 {
		return
	}

	fmt.Fprintf(w.out, "\t\t walker %d: %8d of %8d   acceptance %.3f\n",
		w.slot, done, total, w.AcceptanceRate())
}

// AcceptanceRate returns the fraction of accepted Metropolis moves over
// the walker's lifetime.
func (w *Walker) AcceptanceRate() float64 {
	if w.attempts == 0 {
		return 0
	}

	return float64(w.acceptances) / float64(w.attempts)
}

// Configuration exposes the current slice positions. The returned slice
// is the walker's working storage; callers must copy what they keep.
func (w *Walker) Configuration() []float64 {
	return w.path
}

// walkerSnapshot is the serialized form of one chain.
type walkerSnapshot struct {
	Path   []float64 `json:"path"`
	Sweeps int64     `json:"sweeps"`
}

// DumpConfig serializes the chain so the next run can resume it.
func (w *Walker) DumpConfig() checkpoint.Buffer {
	buf, err := sonnet.Marshal(walkerSnapshot{Path: w.path, Sweeps: w.sweeps})
	if err != nil {
		return nil
	}

	return buf
}

// ReadConfig restores the chain from the snapshot of a previous run. On
// failure the walker is left untouched and starts cold.
func (w *Walker) ReadConfig(buf checkpoint.Buffer) error {
	var snap walkerSnapshot
	if err := sonnet.Unmarshal(buf, &snap); err != nil {
		return fmt.Errorf("pimc: %w", err)
	}

	if len(snap.Path) != w.model.TimeSlices {
		return fmt.Errorf("pimc: snapshot has %d time slices, the model has %d",
			len(snap.Path), w.model.TimeSlices)
	}

	w.path = append(w.path[:0], snap.Path...)
	w.sweeps = snap.Sweeps

	return nil
}

// DeviceFingerprint returns the walker memory high-water mark in bytes.
func (w *Walker) DeviceFingerprint() int64 {
	return int64(cap(w.path)) * 8
}

// PrintSummary writes the lifetime statistics of the chain.
func (w *Walker) PrintSummary(out io.Writer) {
	fmt.Fprintf(out, "\t\t walker %d: %d sweeps, %d of %d moves accepted (%.3f)\n",
		w.slot, w.sweeps, w.acceptances, w.attempts, w.AcceptanceRate())
}
