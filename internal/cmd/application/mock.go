// Package application provides test doubles for cmd/application.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/jettonmap/cmd/application"
	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/constants"
)

// Mock implements application.Application with overridable functions.
// A nil function field yields a zero value.
type Mock struct {
	SourceFunc       func() (application.Source, error)
	VerifierFunc     func(opts ...verify.Option) (*verify.Verifier, error)
	OutputFileFunc   func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

var _ application.Application = (*Mock)(nil)

// Source returns SourceFunc's result or nil.
func (m *Mock) Source() (application.Source, error) {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return nil, nil
}

// Verifier returns VerifierFunc's result or nil.
func (m *Mock) Verifier(opts ...verify.Option) (*verify.Verifier, error) {
	if m.VerifierFunc != nil {
		return m.VerifierFunc(opts...)
	}
	return nil, nil
}

// OutputFile returns OutputFileFunc's result or the default aggregate path.
func (m *Mock) OutputFile() string {
	if m.OutputFileFunc != nil {
		return m.OutputFileFunc()
	}
	return constants.DefaultOutputFile
}

// Logger returns LoggerFunc's result or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns OutputFormatFunc's result or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Version returns VersionFunc's result or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns CommitFunc's result or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns DateFunc's result or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns BuiltByFunc's result or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
