// dodger is a side-scrolling pipe dodging game for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	dodger play     - Play in the current terminal
//	dodger window   - Play in a desktop window
//	dodger serve    - Start SSH server for remote play
//	dodger sim      - Run a scripted session without a display
//	dodger config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search path, then built-in)
//	--seed <value>     - RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Pipe Dodger - steer through the gaps",
	Long: `Pipe Dodger is a minimal side-scrolling arcade game. Move up and down
to fly through the gaps between pipes; touching a pipe or the ground ends
the run. The score grows with time and with every pipe you pass, and the
game speeds up every hundred points.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a scripted session without a display
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play --seed 42 --sound
  dodger window --config ./my-dodger.yaml
  dodger serve --ssh :2222
  dodger sim --ticks 1200 --script "10:up,40:release,55:down"`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
