package pimc

import (
	"math"

	"github.com/qmclab/dcago/linalg"
	"github.com/qmclab/dcago/params"
	"github.com/qmclab/dcago/qmci"
)

// An Accumulator estimates the virial energy, the position density and
// the slice-slice correlation of walker configurations. One instance is
// driven by a single goroutine; merging into the shared instance is
// serialized by the solver.
type Accumulator struct {
	model   Model
	errType params.ErrorComputationType
	index   int

	iteration int
	path      []float64

	samples     int64
	histogram   []float64
	energySum   float64
	energySqSum float64
	correlation *linalg.Matrix
	blockSums   []float64

	energyMean  float64
	energyError float64
	density     []float64
}

var _ qmci.Accumulator = (*Accumulator)(nil)

func newAccumulator(model Model, errType params.ErrorComputationType, index int) *Accumulator {
	return &Accumulator{
		model:       model,
		errType:     errType,
		index:       index,
		histogram:   make([]float64, model.Bins),
		correlation: linalg.NewSquareMatrix(model.TimeSlices),
	}
}

// Initialize clears all partial sums for the given iteration.
func (a *Accumulator) Initialize(iteration int) {
	a.iteration = iteration
	a.samples = 0
	a.energySum = 0
	a.energySqSum = 0
	a.blockSums = a.blockSums[:0]
	for i := range a.histogram {
		a.histogram[i] = 0
	}
	a.correlation.Clear()

	a.energyMean = 0
	a.energyError = 0
	a.density = nil
}

// UpdateFrom copies the walker's current configuration. It runs on the
// walker's goroutine and does nothing beyond the copy, so the walker
// can sweep on while this accumulator measures.
func (a *Accumulator) UpdateFrom(w qmci.Walker) {
	walker := w.(*Walker)
	if a.path == nil {
		a.path = make([]float64, len(walker.path))
	}
	copy(a.path, walker.path)
}

// Measure evaluates all estimators on the last copied configuration.
func (a *Accumulator) Measure() {
	blockSum := 0.0
	for _, x := range a.path {
		a.binPosition(x)

		e := a.model.Potential(x) + 0.5*x*a.model.PotentialDerivative(x)
		a.energySum += e
		a.energySqSum += e * e
		blockSum += e
	}

	if a.errType == params.ErrorJackKnife {
		a.blockSums = append(a.blockSums, blockSum)
	}

	if a.iteration >= a.model.CorrelationFromIteration {
		a.accumulateCorrelation()
	}

	a.samples++
}

func (a *Accumulator) binPosition(x float64) {
	bin := int(math.Floor((x + a.model.XMax) / (2 * a.model.XMax) * float64(a.model.Bins)))
	if bin >= 0 && bin < len(a.histogram) {
		a.histogram[bin]++
	}
}

func (a *Accumulator) accumulateCorrelation() {
	for j, xj := range a.path {
		for i, xi := range a.path {
			a.correlation.AddAt(i, j, xi*xj)
		}
	}
}

// SumTo merges this accumulator's partial sums into other.
func (a *Accumulator) SumTo(other qmci.Accumulator) {
	target := other.(*Accumulator)

	target.samples += a.samples
	target.energySum += a.energySum
	target.energySqSum += a.energySqSum
	for i, v := range a.histogram {
		target.histogram[i] += v
	}
	target.correlation.Add(a.correlation)
	target.blockSums = append(target.blockSums, a.blockSums...)
}

// Finalize turns the aggregated sums into estimates: the mean energy,
// the normalized position density and the sample-averaged correlation
// matrix.
func (a *Accumulator) Finalize() {
	values := a.values()
	if values == 0 {
		return
	}

	a.energyMean = a.energySum / float64(values)

	binWidth := 2 * a.model.XMax / float64(a.model.Bins)
	a.density = make([]float64, len(a.histogram))
	for i, count := range a.histogram {
		a.density[i] = count / (float64(values) * binWidth)
	}

	a.correlation.Scale(1 / float64(a.samples))
}

// computeErrorBars estimates the statistical error of the mean energy
// with the configured method. Sums stay intact, so it may run after
// Finalize.
func (a *Accumulator) computeErrorBars() {
	values := a.values()
	if values == 0 {
		return
	}

	switch a.errType {
	case params.ErrorStandardDeviation:
		mean := a.energySum / float64(values)
		variance := a.energySqSum/float64(values) - mean*mean
		if variance < 0 {
			variance = 0
		}
		a.energyError = math.Sqrt(variance / float64(values))

	case params.ErrorJackKnife:
		a.energyError = a.jackKnifeError()
	}
}

// jackKnifeError resamples the per-measurement block sums, leaving one
// block out at a time. Blocking absorbs the autocorrelation within one
// configuration that the plain standard deviation underestimates.
func (a *Accumulator) jackKnifeError() float64 {
	blocks := len(a.blockSums)
	if blocks < 2 {
		return 0
	}

	total := 0.0
	for _, s := range a.blockSums {
		total += s
	}

	slices := float64(a.model.TimeSlices)
	grand := total / (float64(blocks) * slices)

	sumSq := 0.0
	for _, s := range a.blockSums {
		leaveOut := (total - s) / (float64(blocks-1) * slices)
		d := leaveOut - grand
		sumSq += d * d
	}

	return math.Sqrt(float64(blocks-1) / float64(blocks) * sumSq)
}

func (a *Accumulator) values() int64 {
	return a.samples * int64(a.model.TimeSlices)
}

// Samples returns the number of configurations measured.
func (a *Accumulator) Samples() int64 {
	return a.samples
}

// EnergyMean returns the virial energy estimate. Valid after Finalize.
func (a *Accumulator) EnergyMean() float64 {
	return a.energyMean
}

// EnergyError returns the statistical error of the energy estimate.
// Valid after computeErrorBars ran on the last iteration; zero when
// error computation is disabled.
func (a *Accumulator) EnergyError() float64 {
	return a.energyError
}

// Density returns the normalized position histogram. Valid after
// Finalize.
func (a *Accumulator) Density() []float64 {
	return a.density
}

// Correlation returns a read view of the slice-slice correlation
// matrix.
func (a *Accumulator) Correlation() linalg.MatrixView {
	return linalg.View(a.correlation)
}

// CorrelationFunction returns the time-translation average
// G(k) = <x(i) x(i+k)> of the correlation matrix. Valid after Finalize.
func (a *Accumulator) CorrelationFunction() []float64 {
	view := linalg.View(a.correlation)
	m := view.NrRows()

	g := make([]float64, m)
	for k := 0; k < m; k++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += view.At(i, (i+k)%m)
		}
		g[k] = sum / float64(m)
	}

	return g
}

// DeviceFingerprint returns the accumulator memory high-water mark in
// bytes.
func (a *Accumulator) DeviceFingerprint() int64 {
	floats := len(a.path) + len(a.histogram) + len(a.correlation.Data()) +
		cap(a.blockSums) + len(a.density)

	return int64(floats) * 8
}
