// Package application defines what jettonmap commands need from the
// application.
//
// Commands accept the Application interface rather than the concrete App
// type so they can be exercised with internal/cmd/application.Mock:
//
//	mock := &application.Mock{
//	    SourceFunc: func() (application.Source, error) {
//	        return fakeSource, nil
//	    },
//	}
//	cmd := fetch.NewCommand(mock)
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/jettons"
)

// Source is the remote authority for jetton data.
type Source interface {
	// Attestation returns nil when no usable answer was obtained.
	Attestation(ctx context.Context, address string) *jettons.Attestation
	// Fetch is Attestation with the failure reason preserved.
	Fetch(ctx context.Context, address string) (*jettons.Attestation, error)
}

// Application provides the dependencies commands use.
type Application interface {
	// Source returns the configured remote source.
	Source() (Source, error)

	// Verifier returns a verifier built from configuration, with opts
	// applied on top.
	Verifier(opts ...verify.Option) (*verify.Verifier, error)

	// OutputFile returns the aggregate path.
	OutputFile() string

	// Logger returns the configured logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format, empty for auto.
	OutputFormat() string

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
