package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipe-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Lookup order:
  1. --config path
  2. ~/.dodger/dodger.yaml
  3. ./configs/dodger.yaml
  4. built-in defaults

Examples:
  dodger config
  dodger config > ~/.dodger/dodger.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		exitOnError(fmt.Errorf("loading config: %w", err))
	}

	data, err := config.Marshal(cfg)
	exitOnError(err)

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
