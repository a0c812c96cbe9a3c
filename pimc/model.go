package pimc

import "fmt"

// Model defines the discretized system the walkers sample: one particle
// in a harmonic well, represented by a periodic chain of TimeSlices
// positions spanning the imaginary-time period Tau. The model is
// immutable and shared by value between all walkers and accumulators of
// a run.
type Model struct {
	// TimeSlices is the number of slices the imaginary-time period is
	// divided into.
	TimeSlices int

	// Tau is the imaginary-time period, the inverse temperature of the
	// sampled ensemble.
	Tau float64

	// StepSize is the half-width of the uniform trial displacement of
	// one Metropolis move.
	StepSize float64

	// XMax bounds the position histogram. Positions are binned over
	// [-XMax, XMax); values outside are sampled but not binned.
	XMax float64

	// Bins is the number of histogram bins over [-XMax, XMax).
	Bins int

	// CorrelationFromIteration is the first iteration that accumulates
	// the slice-slice correlation matrix. Earlier iterations skip this
	// quadratic-cost estimator.
	CorrelationFromIteration int
}

// DefaultModel returns the chain the input file starts from: 100 slices
// over a period of 10, unit Metropolis steps, and a 100-bin histogram
// over [-4, 4).
func DefaultModel() Model {
	return Model{
		TimeSlices: 100,
		Tau:        10.0,
		StepSize:   1.0,
		XMax:       4.0,
		Bins:       100,
	}
}

// TimeStep returns the imaginary-time spacing of neighboring slices.
func (m Model) TimeStep() float64 {
	return m.Tau / float64(m.TimeSlices)
}

// Potential evaluates the harmonic well at displacement x, in units
// where the mass and the oscillator frequency are 1.
func (m Model) Potential(x float64) float64 {
	return 0.5 * x * x
}

// PotentialDerivative evaluates dV/dx, the input of the virial energy
// estimator.
func (m Model) PotentialDerivative(x float64) float64 {
	return x
}

// GroundStateEnergy returns the energy the estimator converges to for
// large Tau.
func (m Model) GroundStateEnergy() float64 {
	return 0.5
}

// Validate reports the first defect of the model definition, if any.
func (m Model) Validate() error {
	if m.TimeSlices < 2 {
		return fmt.Errorf("pimc: at least 2 time slices required, got %d",
			m.TimeSlices)
	}
	if m.Tau <= 0 {
		return fmt.Errorf("pimc: the imaginary-time period must be positive, got %g",
			m.Tau)
	}
	if m.StepSize <= 0 {
		return fmt.Errorf("pimc: the Metropolis step size must be positive, got %g",
			m.StepSize)
	}
	if m.XMax <= 0 {
		return fmt.Errorf("pimc: the histogram range must be positive, got %g",
			m.XMax)
	}
	if m.Bins < 1 {
		return fmt.Errorf("pimc: at least 1 histogram bin required, got %d", m.Bins)
	}
	if m.CorrelationFromIteration < 0 {
		return fmt.Errorf("pimc: negative correlation start iteration %d",
			m.CorrelationFromIteration)
	}

	return nil
}
