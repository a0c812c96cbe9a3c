package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dcago",
	Short: "Dcago runs threaded quantum Monte Carlo integrations.",
	Long: `Dcago integrates quantum Monte Carlo methods with walker and ` +
		`accumulator thread pools. It reads DCA-style JSON input files, ` +
		`records phase traces to a sqlite file, and can serve a live monitor ` +
		`of the running integration.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Failures exit through atexit so registered flush
// handlers still run.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
