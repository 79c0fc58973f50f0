package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipe-dodger/internal/platform/tui"
)

var flagPlaySound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal. The playfield is sized once
from the terminal at startup.

Controls:
  Up/W       - Move up
  Down/S     - Move down
  Space      - Stop
  Enter      - Start / restart
  Q/Ctrl+C   - Quit

Terminals do not report key release: a direction stops on its own shortly
after the key is let go, or at once with Space.

Examples:
  dodger play
  dodger play --seed 42
  dodger play --sound --log-file dodger.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlaySound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(withLogger("play", true, playTerminal))
}

func playTerminal(logger *log.Logger) error {
	cfg, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("cannot read terminal size, using default", "error", termErr)
	}

	cues := openCues(flagPlaySound, logger)
	defer cues.Close()

	err = tui.Run(tui.Options{
		Config: cfg,
		Cols:   width,
		Rows:   height,
		Seed:   flagSeed,
		Logger: logger,
		Cues:   cues,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
