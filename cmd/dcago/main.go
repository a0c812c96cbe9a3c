// Dcago runs threaded quantum Monte Carlo integrations from DCA-style
// JSON input files.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"
)

func main() {
	// A .env file fills in environment entries the shell does not set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		atexit.Fatal(err)
	}

	Execute()
	atexit.Exit(0)
}
