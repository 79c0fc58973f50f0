package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/platform/sound"
)

// newLogger builds the process logger. Full-screen frontends own the
// terminal, so without --log-file they log nowhere. The returned func
// closes the log file.
func newLogger(prefix string, fullScreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	case fullScreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game config and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// openCues returns speaker-backed cues when enabled. A missing audio
// device is not fatal; the game runs silent.
func openCues(enabled bool, logger *log.Logger) sound.Cues {
	if !enabled {
		return sound.Nop{}
	}
	b, err := sound.NewBeeper()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return sound.Nop{}
	}
	return b
}

// openLogger is swapped out in tests.
var openLogger = newLogger

// withLogger runs fn with the process logger and closes the log file
// afterwards, whether or not fn failed.
func withLogger(prefix string, fullScreen bool, fn func(*log.Logger) error) error {
	logger, closeLog, err := openLogger(prefix, fullScreen)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()
	return fn(logger)
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
