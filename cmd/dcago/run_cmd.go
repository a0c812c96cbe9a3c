package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/qmclab/dcago/params"
	"github.com/qmclab/dcago/pimc"
	"github.com/qmclab/dcago/qmci"
	"github.com/qmclab/dcago/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one threaded QMC integration",
	Long: `run reads the integration parameters from a DCA-style JSON input ` +
		`file, executes the configured number of self-consistency iterations ` +
		`with walker and accumulator threads, and prints the energy and the ` +
		`convergence metric of every iteration.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		runIntegration(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("input", "",
		"JSON input file, $DCAGO_INPUT when empty, defaults otherwise")
	runCmd.Flags().String("output", "",
		"name of the sqlite trace file, $DCAGO_OUTPUT when empty")
	runCmd.Flags().Bool("monitor", false, "serve the live monitor")
	runCmd.Flags().Int("port", 0,
		"port of the live monitor, 0 picks a free one")
	runCmd.Flags().Bool("open", false,
		"open the monitor page in a browser")
}

// iterationTableEntry is one row of the iterations table in the run
// database.
type iterationTableEntry struct {
	Iteration   int
	Energy      float64
	EnergyError float64
	Convergence float64
}

func runIntegration(cmd *cobra.Command) {
	p := readParameters(cmd)

	method := pimc.MakeBuilder().
		WithErrorComputation(p.ErrorComputation()).
		Build()

	sim := buildSimulation(cmd)

	solver := qmci.MakeBuilder().
		WithName("pimc_solver").
		WithMethod(method).
		WithParameters(p).
		Build()
	sim.RegisterSolver(solver)

	openMonitorPage(cmd, sim)

	recorder := sim.GetDataRecorder()
	recorder.CreateTable("iterations", iterationTableEntry{})

	for iteration := 0; iteration < p.Iterations(); iteration++ {
		solver.Initialize(iteration)

		if err := solver.Integrate(); err != nil {
			atexit.Fatal(err)
		}

		metric, err := solver.Finalize()
		if err != nil {
			atexit.Fatal(err)
		}

		fmt.Printf("iteration %d: E = %.6f +/- %.6f, convergence %.6f\n",
			iteration, method.EnergyMean(), method.EnergyError(), metric)

		recorder.InsertData("iterations", iterationTableEntry{
			Iteration:   iteration,
			Energy:      method.EnergyMean(),
			EnergyError: method.EnergyError(),
			Convergence: metric,
		})
	}

	fmt.Printf("\ntime per phase:\n")
	sim.GetTimeTracer().Report(os.Stdout)

	sim.Terminate()
}

func readParameters(cmd *cobra.Command) params.Parameters {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		path = os.Getenv("DCAGO_INPUT")
	}

	p := params.Default()
	if path != "" {
		var err error
		p, err = params.FromFile(path)
		if err != nil {
			atexit.Fatal(err)
		}
	}

	if err := p.Validate(); err != nil {
		atexit.Fatal(err)
	}

	return p
}

func buildSimulation(cmd *cobra.Command) *simulation.Simulation {
	builder := simulation.MakeBuilder()

	monitorOn, _ := cmd.Flags().GetBool("monitor")
	port, _ := cmd.Flags().GetInt("port")

	if !monitorOn {
		if port != 0 {
			atexit.Fatal("the --port flag needs --monitor")
		}
		builder = builder.WithoutMonitoring()
	} else if port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = os.Getenv("DCAGO_OUTPUT")
	}
	if output != "" {
		builder = builder.WithOutputFileName(output)
	}

	return builder.Build()
}

func openMonitorPage(cmd *cobra.Command, sim *simulation.Simulation) {
	open, _ := cmd.Flags().GetBool("open")
	if !open || sim.GetMonitor() == nil {
		return
	}

	if err := sim.GetMonitor().OpenInBrowser(); err != nil {
		fmt.Fprintf(os.Stderr, "could not open the monitor page: %v\n", err)
	}
}
