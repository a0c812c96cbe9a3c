// Package params reads Monte Carlo integration parameters from
// DCA-style JSON input files.
package params

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/sugawarayuuta/sonnet"
)

// DefaultSeed is the seed used when the input file does not set one.
const DefaultSeed = 985456376

// Parameters holds the settings of a threaded Monte Carlo integration.
// Zero values are not meaningful; construct through Default or
// FromFile.
type Parameters struct {
	seed                 int64
	warmUpSweeps         int
	sweepsPerMeasurement float64
	measurements         int
	errorComputation     ErrorComputationType
	configReadDir        string
	configWriteDir       string

	walkers                         int
	accumulators                    int
	sharedWalkAndAccumulationThread bool
	fixMeasPerWalker                bool

	iterations int
}

// Default returns the parameter set used when the input file leaves
// every entry out.
func Default() Parameters {
	return Parameters{
		seed:                 DefaultSeed,
		warmUpSweeps:         20,
		sweepsPerMeasurement: 1.0,
		measurements:         100,
		errorComputation:     ErrorNone,
		walkers:              1,
		accumulators:         1,
		fixMeasPerWalker:     true,
		iterations:           1,
	}
}

// FromFile reads the JSON document at path on top of the defaults.
func FromFile(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("params: %w", err)
	}

	p := Default()
	if err := p.Read(data); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

type inputFile struct {
	MCI *mciGroup `json:"Monte-Carlo-integration"`
	DCA *dcaGroup `json:"DCA"`
}

type mciGroup struct {
	Seed                 any             `json:"seed"`
	WarmUpSweeps         *int            `json:"warm-up-sweeps"`
	SweepsPerMeasurement *float64        `json:"sweeps-per-measurement"`
	Measurements         *int            `json:"measurements"`
	ErrorComputationType *string         `json:"error-computation-type"`
	ConfigReadDir        *string         `json:"configuration-read-dir"`
	ConfigWriteDir       *string         `json:"configuration-write-dir"`
	ThreadedSolver       *threadedSolver `json:"threaded-solver"`
}

type threadedSolver struct {
	Walkers          *int  `json:"walkers"`
	Accumulators     *int  `json:"accumulators"`
	SharedThread     *bool `json:"shared-walk-and-accumulation-thread"`
	FixMeasPerWalker *bool `json:"fix-meas-per-walker"`
}

type dcaGroup struct {
	Iterations *int `json:"iterations"`
}

// Read updates p from a JSON document. Entries the document leaves out
// keep their current values, so reading on top of Default() yields the
// documented default for every absent entry.
func (p *Parameters) Read(data []byte) error {
	var in inputFile
	if err := sonnet.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	if in.MCI != nil {
		if err := p.applyMCIGroup(in.MCI); err != nil {
			return err
		}
	}

	if in.DCA != nil && in.DCA.Iterations != nil {
		p.iterations = *in.DCA.Iterations
	}

	return nil
}

func (p *Parameters) applyMCIGroup(g *mciGroup) error {
	p.applySeed(g.Seed)

	if g.WarmUpSweeps != nil {
		p.warmUpSweeps = *g.WarmUpSweeps
	}

	if g.SweepsPerMeasurement != nil {
		p.sweepsPerMeasurement = *g.SweepsPerMeasurement
	}

	if g.Measurements != nil {
		p.measurements = *g.Measurements
	}

	if g.ErrorComputationType != nil {
		t, err := ParseErrorComputationType(*g.ErrorComputationType)
		if err != nil {
			return err
		}
		p.errorComputation = t
	}

	if g.ConfigReadDir != nil {
		p.configReadDir = *g.ConfigReadDir
	}

	if g.ConfigWriteDir != nil {
		p.configWriteDir = *g.ConfigWriteDir
	}

	if ts := g.ThreadedSolver; ts != nil {
		if ts.Walkers != nil {
			p.walkers = *ts.Walkers
		}
		if ts.Accumulators != nil {
			p.accumulators = *ts.Accumulators
		}
		if ts.SharedThread != nil {
			p.sharedWalkAndAccumulationThread = *ts.SharedThread
		}
		if ts.FixMeasPerWalker != nil {
			p.fixMeasPerWalker = *ts.FixMeasPerWalker
		}
	}

	return nil
}

// applySeed accepts either an integer seed or the string "random",
// which draws a fresh seed in [0, MaxInt32] on every read. Any other
// string falls back to the default seed with a warning.
func (p *Parameters) applySeed(v any) {
	switch s := v.(type) {
	case nil:
	case float64:
		p.seed = clampSeed(s)
	case string:
		if s == "random" {
			p.seed = rand.Int63n(int64(math.MaxInt32) + 1)
			return
		}
		fmt.Fprintf(os.Stderr,
			"Warning: invalid seeding option %q. Using default seed = %d.\n",
			s, DefaultSeed)
		p.seed = DefaultSeed
	default:
		fmt.Fprintf(os.Stderr,
			"Warning: invalid seeding option %v. Using default seed = %d.\n",
			v, DefaultSeed)
		p.seed = DefaultSeed
	}
}

// clampSeed maps out-of-range numbers to the closest representable
// 32-bit seed.
func clampSeed(s float64) int64 {
	switch {
	case s > math.MaxInt32:
		return math.MaxInt32
	case s < math.MinInt32:
		return math.MinInt32
	}

	return int64(s)
}

// Validate reports the first configuration error, if any.
func (p Parameters) Validate() error {
	if p.walkers < 1 {
		return fmt.Errorf("params: at least 1 walker required, got %d", p.walkers)
	}
	if p.accumulators < 1 {
		return fmt.Errorf("params: at least 1 accumulator required, got %d",
			p.accumulators)
	}
	if p.measurements < 0 {
		return fmt.Errorf("params: negative measurement count %d", p.measurements)
	}
	if p.warmUpSweeps < 0 {
		return fmt.Errorf("params: negative warm-up sweep count %d", p.warmUpSweeps)
	}
	if p.sweepsPerMeasurement <= 0 {
		return fmt.Errorf("params: sweeps-per-measurement must be positive, got %g",
			p.sweepsPerMeasurement)
	}
	if p.iterations < 1 {
		return fmt.Errorf("params: at least 1 iteration required, got %d",
			p.iterations)
	}

	return nil
}

// Seed returns the random seed.
func (p Parameters) Seed() int64 {
	return p.seed
}

// WarmUpSweeps returns the number of thermalization sweeps per walker.
func (p Parameters) WarmUpSweeps() int {
	return p.warmUpSweeps
}

// SweepsPerMeasurement returns the number of sweeps separating two
// measurements.
func (p Parameters) SweepsPerMeasurement() float64 {
	return p.sweepsPerMeasurement
}

// Measurements returns the requested total measurement count per
// process.
func (p Parameters) Measurements() int {
	return p.measurements
}

// ErrorComputation returns the configured error-estimation method.
func (p Parameters) ErrorComputation() ErrorComputationType {
	return p.errorComputation
}

// ConfigurationReadDir returns the directory checkpointed
// configurations are restored from. Empty disables restore.
func (p Parameters) ConfigurationReadDir() string {
	return p.configReadDir
}

// ConfigurationWriteDir returns the directory configurations are
// checkpointed to. Empty disables checkpointing.
func (p Parameters) ConfigurationWriteDir() string {
	return p.configWriteDir
}

// Walkers returns the number of walker slots.
func (p Parameters) Walkers() int {
	return p.walkers
}

// Accumulators returns the number of accumulator slots.
func (p Parameters) Accumulators() int {
	return p.accumulators
}

// SharedWalkAndAccumulationThread reports whether walker and
// accumulator roles are fused onto shared threads.
func (p Parameters) SharedWalkAndAccumulationThread() bool {
	return p.sharedWalkAndAccumulationThread
}

// FixMeasPerWalker reports whether each walker receives a fixed
// measurement share instead of claiming from a shared counter.
func (p Parameters) FixMeasPerWalker() bool {
	return p.fixMeasPerWalker
}

// Iterations returns the number of outer self-consistency iterations.
func (p Parameters) Iterations() int {
	return p.iterations
}
