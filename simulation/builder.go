package simulation

import (
	"github.com/rs/xid"

	"github.com/qmclab/dcago/datarecording"
	"github.com/qmclab/dcago/monitoring"
	"github.com/qmclab/dcago/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring sets the run to not start a monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		solverNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "dcago_run_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)

	s.clock = tracing.NewWallClock()
	s.dbTracer = tracing.NewDBTracer(s.clock, s.dataRecorder)
	s.timeTracer = tracing.NewTotalTimeTracer(s.clock)

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterRun(s.id)
		s.monitor.StartServer()
	}

	return s
}
