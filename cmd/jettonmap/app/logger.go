package app

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/jettonmap/pkg/logging"
)

// diagnostics receives warnings about flags and fatal errors. Like every
// other diagnostic it goes to standard output.
var diagnostics io.Writer = os.Stdout

// NewLogger opens the application logger. Level precedence, highest first:
//  1. --log-level flag or LOG_LEVEL
//  2. -q/--quiet (warn)
//  3. -v/--verbose (debug)
//  4. info
func NewLogger(config *Config) (*logging.Sink, error) {
	level := determineLogLevel(config)

	return logging.Open(logging.Config{
		Level:   level,
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,
		Caller:  level == "debug" || level == "trace",
	})
}

func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(diagnostics, "Warning: invalid log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	}

	switch {
	case config.Verbose && config.Quiet:
		fmt.Fprintln(diagnostics, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	case config.Quiet:
		return "warn"
	case config.Verbose:
		return "debug"
	default:
		return "info"
	}
}

func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	default:
		return "info"
	}
}
