package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipe-dodger/internal/platform/desktop"
)

var flagWindowSound bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized from the window section of the config.

Controls:
  Up/W       - Move up while held
  Down/S     - Move down while held
  Enter      - Start / restart (or click the Start button)
  Esc        - Close the window

Examples:
  dodger window
  dodger window --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", false, "Play sound cues")
}

func runWindow(_ *cobra.Command, _ []string) {
	exitOnError(withLogger("window", false, playWindow))
}

func playWindow(logger *log.Logger) error {
	cfg, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cues := openCues(flagWindowSound, logger)
	defer cues.Close()

	err = desktop.Run(desktop.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Cues:   cues,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
