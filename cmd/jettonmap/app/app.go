// Package app wires configuration, logging and the remote source into the
// jettonmap commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/jettonmap/cmd/application"
	"github.com/agentstation/jettonmap/internal/sources/toncenter"
	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// App holds the dependencies shared by every command.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	sink   *logging.Sink

	mu     sync.Mutex
	source application.Source
}

var _ application.Application = (*App)(nil)

// New creates an App from the default configuration sources.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		a.config = config
	}
	if a.logger == nil {
		if err := a.openLogger(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// openLogger replaces the logger with one built from the current
// configuration, closing any log file the previous one held.
func (a *App) openLogger() error {
	sink, err := NewLogger(a.config)
	if err != nil {
		return err
	}
	_ = a.Close()
	a.sink = sink
	a.logger = &sink.Logger
	logging.SetDefault(sink.Logger)
	return nil
}

// Close releases the log file, if the logger writes to one.
func (a *App) Close() error {
	err := a.sink.Close()
	a.sink = nil
	return err
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the --format value.
func (a *App) OutputFormat() string { return a.config.Format }

// OutputFile returns the aggregate path.
func (a *App) OutputFile() string { return a.config.OutputFile }

// Source returns the TON Center client, creating it on first use.
func (a *App) Source() (application.Source, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.source != nil {
		return a.source, nil
	}
	if a.config.TonCenterURL == "" {
		return nil, errors.NewConfigError("toncenter_url", "cannot be empty", nil)
	}

	a.source = toncenter.New(a.config.TonCenterURL,
		toncenter.WithAPIKey(a.config.TonCenterAPIKey),
		toncenter.WithTimeout(a.config.RequestTimeout),
		toncenter.WithIPFSGateway(a.config.IPFSGateway),
	)
	return a.source, nil
}

// Verifier builds a verifier from configuration. opts are applied last.
func (a *App) Verifier(opts ...verify.Option) (*verify.Verifier, error) {
	source, err := a.Source()
	if err != nil {
		return nil, err
	}

	base := []verify.Option{
		verify.WithDir(a.config.JettonsDir),
		verify.WithExtension(a.config.Extension),
		verify.WithOutputFile(a.config.OutputFile),
		verify.WithStrict(a.config.Strict),
		verify.WithMode(verify.Mode(a.config.AggregateMode)),
	}
	return verify.New(source, append(base, opts...)...)
}

// Option configures an App.
type Option func(*App) error

// WithConfig sets the configuration instead of loading it.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSource sets the remote source, mainly for tests.
func WithSource(source application.Source) Option {
	return func(a *App) error {
		a.source = source
		return nil
	}
}
