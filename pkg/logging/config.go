package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// Config selects the level, encoding and destination of a logger.
type Config struct {
	Level   string // trace, debug, info, warn or error; empty means info
	Format  string // json, console or auto
	Output  string // stdout, stderr, discard or a file path
	NoColor bool
	Caller  bool
}

// Sink is a configured logger together with the log file it appends to.
type Sink struct {
	Logger zerolog.Logger
	file   *os.File
}

// Close releases the log file. It is a no-op for the standard streams.
func (s *Sink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Open builds a logger from cfg. An Output path that cannot be opened is
// a ConfigError rather than a silent switch to another stream.
func Open(cfg Config) (*Sink, error) {
	sink := &Sink{}
	out, err := sink.destination(cfg.Output)
	if err != nil {
		return nil, err
	}

	level, _ := ParseLevel(cfg.Level)
	lc := zerolog.New(encoder(out, cfg)).Level(level).With().Timestamp()
	if cfg.Caller {
		lc = lc.Caller()
	}
	sink.Logger = lc.Logger()
	return sink, nil
}

func (s *Sink) destination(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard", "none":
		return io.Discard, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, errors.NewConfigError("log_output", "cannot open log file "+output, err)
	}
	s.file = f
	return f, nil
}

// encoder picks console output for "console", and for "auto" when out is
// a terminal. Everything else is JSON lines.
func encoder(out io.Writer, cfg Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: cfg.NoColor}
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield
// info and false.
func ParseLevel(name string) (zerolog.Level, bool) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return zerolog.InfoLevel, true
	case "warning":
		return zerolog.WarnLevel, true
	case "off", "none":
		return zerolog.Disabled, true
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, false
	}
	return level, true
}
