// daynight is a terminal simulation of the day/night territory battle:
// orbs bounce diagonally across a split grid and flip cells of the
// opposing half on contact.
//
// Usage:
//
//	daynight list              - List available scenarios
//	daynight run [scenario]    - Run a scenario in the terminal
//	daynight bench <scenario>  - Run a headless benchmark
//	daynight serve             - Start SSH server for remote viewing
//	daynight stats [scenario]  - Show recorded run statistics
//
// Global flags:
//
//	--fps <rate>    - Set display frame rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.daynight/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daynight",
	Short: "Day/Night - a territory battle in your terminal",
	Long: `Day/Night simulates the classic pong-wars duel: each side's orbs
bounce diagonally across a split grid, converting cells of the opposing
half on contact.

Available commands:
  list     - Show all available scenarios
  run      - Run a scenario in the terminal
  bench    - Run a headless benchmark
  serve    - Start SSH server for remote viewing
  stats    - View recorded run statistics

Examples:
  daynight list
  daynight run classic
  daynight run swarm --seed 42
  daynight serve --ssh :2222
  daynight stats classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Display frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.daynight/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
