package verify

import (
	"fmt"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// Mode selects how validated records reach the aggregate.
type Mode string

const (
	// ModeMerge extends the persisted aggregate, skipping known keys.
	ModeMerge Mode = "merge"
	// ModeReplace regenerates the aggregate from this run's records only.
	ModeReplace Mode = "replace"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMerge, "":
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", errors.NewConfigError("aggregate", fmt.Sprintf("unknown mode %q: must be merge or replace", s), nil)
	}
}

type options struct {
	dir        string
	extension  string
	outputFile string
	strict     bool
	mode       Mode
	dryRun     bool
}

func defaultOptions() *options {
	return &options{
		dir:        constants.DefaultJettonsDir,
		extension:  constants.DefaultExtension,
		outputFile: constants.DefaultOutputFile,
		strict:     true,
		mode:       ModeMerge,
	}
}

// Option configures a Verifier.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithDir sets the directory description files live in.
func WithDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{Field: "dir", Message: "cannot be empty"}
		}
		o.dir = dir
		return nil
	}
}

// WithExtension sets the extension description files carry.
func WithExtension(ext string) Option {
	return func(o *options) error {
		if ext == "" {
			return &errors.ValidationError{Field: "extension", Message: "cannot be empty"}
		}
		o.extension = ext
		return nil
	}
}

// WithOutputFile sets the aggregate file.
func WithOutputFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "output_file", Message: "cannot be empty"}
		}
		o.outputFile = path
		return nil
	}
}

// WithStrict enables the name, symbol and decimals checks.
func WithStrict(strict bool) Option {
	return func(o *options) error {
		o.strict = strict
		return nil
	}
}

// WithMode sets the aggregation policy.
func WithMode(mode Mode) Option {
	return func(o *options) error {
		m, err := ParseMode(string(mode))
		if err != nil {
			return err
		}
		o.mode = m
		return nil
	}
}

// WithDryRun validates and merges without writing the aggregate.
func WithDryRun(dryRun bool) Option {
	return func(o *options) error {
		o.dryRun = dryRun
		return nil
	}
}
