// Package pimc implements path-integral Monte Carlo for a particle in a
// harmonic well. It provides the concrete walker, accumulator and
// method driven by the threaded qmci solver: walkers advance the
// discretized imaginary-time path with Metropolis moves, accumulators
// estimate the energy through the virial theorem together with the
// position density and the slice-slice correlation.
package pimc

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/qmclab/dcago/params"
	"github.com/qmclab/dcago/qmci"
	"github.com/qmclab/dcago/random"
)

// Method owns the shared model definition and the run-wide accumulator
// all partial results merge into.
type Method struct {
	model   Model
	errType params.ErrorComputationType
	out     io.Writer

	shared     *Accumulator
	prevEnergy float64
}

var _ qmci.Method = (*Method)(nil)

// Builder creates Methods.
type Builder struct {
	model   Model
	errType params.ErrorComputationType
	out     io.Writer
}

// MakeBuilder returns a Builder for the default harmonic oscillator
// chain, printing walker progress to standard output.
func MakeBuilder() Builder {
	return Builder{
		model: DefaultModel(),
		out:   os.Stdout,
	}
}

// WithModel sets the model definition.
func (b Builder) WithModel(m Model) Builder {
	b.model = m
	return b
}

// WithErrorComputation selects how the statistical error of the energy
// is estimated.
func (b Builder) WithErrorComputation(t params.ErrorComputationType) Builder {
	b.errType = t
	return b
}

// WithOutput redirects walker progress output.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.out = w
	return b
}

// Build creates the method. It panics when the model definition is
// invalid.
func (b Builder) Build() *Method {
	b.modelMustBeValid()

	m := &Method{
		model:      b.model,
		errType:    b.errType,
		out:        b.out,
		shared:     newAccumulator(b.model, b.errType, -1),
		prevEnergy: b.model.GroundStateEnergy(),
	}

	return m
}

func (b Builder) modelMustBeValid() {
	if err := b.model.Validate(); err != nil {
		panic(err)
	}
}

// Model returns the model definition the method samples.
func (m *Method) Model() Model {
	return m.model
}

// NewWalker creates the walker for one walker slot. The stream becomes
// the walker's exclusive source of randomness.
func (m *Method) NewWalker(stream *random.Stream, slot int) (qmci.Walker, error) {
	if stream == nil {
		return nil, errors.New("pimc: a walker needs a random stream")
	}

	return newWalker(m.model, stream, slot, m.out), nil
}

// NewAccumulator creates the accumulator for one accumulator slot.
func (m *Method) NewAccumulator(index int) (qmci.Accumulator, error) {
	return newAccumulator(m.model, m.errType, index), nil
}

// SharedAccumulator returns the merge target shared by all threads.
func (m *Method) SharedAccumulator() qmci.Accumulator {
	return m.shared
}

// ComputeErrorBars estimates the statistical error of the merged
// energy.
func (m *Method) ComputeErrorBars() {
	m.shared.computeErrorBars()
}

// StaticFingerprint returns the memory in bytes of the shared merge
// target.
func (m *Method) StaticFingerprint() int64 {
	return m.shared.DeviceFingerprint()
}

// Finalize closes the iteration and returns how far the energy moved
// since the previous one, the convergence measure of the outer loop.
// The first iteration is measured against the large-Tau limit.
func (m *Method) Finalize() (float64, error) {
	if m.shared.Samples() == 0 {
		return 0, errors.New("pimc: no measurements accumulated")
	}

	energy := m.shared.EnergyMean()
	metric := math.Abs(energy - m.prevEnergy)
	m.prevEnergy = energy

	return metric, nil
}

// EnergyMean returns the merged virial energy estimate of the last
// finalized iteration.
func (m *Method) EnergyMean() float64 {
	return m.shared.EnergyMean()
}

// EnergyError returns the statistical error of the merged energy.
func (m *Method) EnergyError() float64 {
	return m.shared.EnergyError()
}

// Density returns the merged position density of the last finalized
// iteration.
func (m *Method) Density() []float64 {
	return m.shared.Density()
}

// CorrelationFunction returns the merged imaginary-time correlation of
// the last finalized iteration.
func (m *Method) CorrelationFunction() []float64 {
	return m.shared.CorrelationFunction()
}
