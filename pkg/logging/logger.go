// Package logging provides the zerolog setup shared by jettonmap's
// commands. Diagnostics go to standard output unless configured otherwise.
//
//	ctx := logging.WithRunID(ctx, runID)
//	logging.FromContext(ctx).Warn().Str("file", path).Msg("Skipping non-jetton file")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger serves code that runs before the CLI configures one.
// It honours LOG_LEVEL, LOG_FORMAT and NO_COLOR.
var defaultLogger = fromEnv()

func fromEnv() zerolog.Logger {
	sink, err := Open(Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		NoColor: os.Getenv("NO_COLOR") != "",
	})
	if err != nil {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return sink.Logger
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's own
// global used by libraries that log through rs/zerolog/log.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
