package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/platform/headless"
)

var (
	flagSimTicks  int
	flagSimScript string
	flagSimWidth  float64
	flagSimHeight float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted session without a display",
	Long: `Run one session for a number of ticks, feeding inputs from a script,
and print a YAML summary. The same seed and script always give the same
result.

Script format: comma-separated "tick:action" entries, ticks counted from 0.
Actions: up, down, release, up-release, down-release, start.

Examples:
  dodger sim --seed 42
  dodger sim --ticks 1200 --script "10:up,40:release,55:down"`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	vp := core.DefaultViewport()
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Input script")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", vp.W, "Viewport width in world units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", vp.H, "Viewport height in world units")
}

func runSim(_ *cobra.Command, _ []string) {
	exitOnError(withLogger("sim", false, func(logger *log.Logger) error {
		return simulate(logger, os.Stdout)
	}))
}

// simulate runs the scripted session and writes the report to w.
func simulate(logger *log.Logger, w io.Writer) error {
	cfg, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	script, err := headless.ParseScript(flagSimScript)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	report, err := headless.Run(headless.Options{
		Config:   cfg,
		Viewport: core.Viewport{W: flagSimWidth, H: flagSimHeight},
		Seed:     flagSeed,
		Ticks:    flagSimTicks,
		Script:   script,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	data, err := report.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
