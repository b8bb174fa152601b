// Command trapctl is a batch front-end over the trapcore engine: it loads a
// Document JSON fixture, runs the trapping pipeline, and prints a summary
// or writes a debug SVG of the adjacency graph and generated traps.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/coldpress/trapcore/cmd/trapctl/internal/cli"
)

func main() {
	_ = godotenv.Load() // local .env is optional; CLI flags/env still work without it

	viper.SetEnvPrefix("TRAPCTL")
	viper.AutomaticEnv()

	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
