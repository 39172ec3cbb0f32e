// Package verify runs the validate-then-merge pipeline over jetton
// description files.
package verify

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/jettons"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// Fetcher returns the authoritative attestation for an address, or nil
// when none could be obtained.
type Fetcher interface {
	Attestation(ctx context.Context, address string) *jettons.Attestation
}

// Verifier validates description files and maintains the aggregate.
type Verifier struct {
	fetcher Fetcher
	opts    *options
}

// New creates a Verifier.
func New(fetcher Fetcher, opts ...Option) (*Verifier, error) {
	if fetcher == nil {
		return nil, &errors.ValidationError{Field: "fetcher", Message: "cannot be nil"}
	}
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Verifier{fetcher: fetcher, opts: o}, nil
}

// Run processes args (or the whole directory when args is empty) one file
// at a time. The aggregate is written only when every processed file
// validated and at least one did. The returned error is non-nil only when
// the aggregate could not be read or written, or ctx was cancelled.
func (v *Verifier) Run(ctx context.Context, args []string) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.FromContext(ctx)

	files, ignored, err := v.inputs(ctx, args)
	if err != nil {
		logger.Error().Err(err).Str("dir", v.opts.dir).Msg("Failed to list jetton files")
		report.Results = append(report.Results, FileResult{Path: v.opts.dir, Err: err})
		return report, nil
	}
	report.Ignored = ignored
	for _, path := range ignored {
		logger.Info().Str("file", path).Msg("Skipping non-jetton file")
	}

	var valid []jettons.Record
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		rec, res := v.check(ctx, path)
		report.Results = append(report.Results, res)
		if res.Valid() {
			valid = append(valid, rec)
		}
	}

	if !report.AllValid() {
		logger.Error().
			Int("failed", len(report.Failed())).
			Int("total", len(report.Results)).
			Msg("Validation failed for one or more jettons")
		return report, nil
	}
	if len(valid) == 0 {
		logger.Warn().Msg("No valid jettons found")
		return report, nil
	}

	return report, v.aggregate(ctx, report, valid)
}

// inputs resolves the files to validate. Replace mode rebuilds the
// aggregate from scratch, so it always covers the whole directory and
// explicit args only add files the listing missed.
func (v *Verifier) inputs(ctx context.Context, args []string) (files, ignored []string, err error) {
	files, ignored, err = Inputs(v.opts.dir, v.opts.extension, args)
	if err != nil || v.opts.mode != ModeReplace || len(args) == 0 {
		return files, ignored, err
	}

	all, _, err := Inputs(v.opts.dir, v.opts.extension, nil)
	if err != nil {
		return nil, ignored, err
	}
	listed := make(map[string]bool, len(all))
	for _, path := range all {
		listed[absPath(path)] = true
	}
	for _, path := range files {
		if !listed[absPath(path)] {
			all = append(all, path)
		}
	}

	logging.FromContext(ctx).Info().
		Int("requested", len(files)).
		Int("files", len(all)).
		Msg("Replace mode validates the whole jettons directory")
	return all, ignored, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (v *Verifier) check(ctx context.Context, path string) (jettons.Record, FileResult) {
	ctx = logging.WithFile(ctx, path)
	logger := logging.FromContext(ctx)
	logger.Info().Msg("Validating jetton")

	res := FileResult{Path: path}
	rec, err := jettons.LoadRecord(path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load jetton file")
		res.Err = err
		return rec, res
	}
	res.Address = rec.Address
	ctx = logging.WithAddress(ctx, rec.Address)
	logger = logging.FromContext(ctx)

	att := v.fetcher.Attestation(ctx, rec.Address)
	if err := Validate(rec, att, v.opts.strict); err != nil {
		logger.Error().Err(err).Msg("Validation failed")
		res.Err = err
		return rec, res
	}

	logger.Info().Msg("Jetton validated successfully")
	return rec, res
}

func (v *Verifier) aggregate(ctx context.Context, report *Report, valid []jettons.Record) error {
	logger := logging.FromContext(ctx)

	collection := jettons.NewCollection()
	if v.opts.mode == ModeMerge {
		existing, err := jettons.ReadCollection(v.opts.outputFile)
		switch {
		case err == nil:
			collection = existing
		case existing != nil:
			logger.Warn().Err(err).Str("file", v.opts.outputFile).Msg("Discarding unreadable aggregate")
			collection = existing
		default:
			logger.Error().Err(err).Str("file", v.opts.outputFile).Msg("Failed to read aggregate")
			return err
		}
	}

	result := collection.Merge(valid)
	report.Added = result.Added
	report.Skipped = result.Skipped
	report.Total = collection.Len()
	for _, rec := range result.Skipped {
		logger.Warn().Str("address", rec.Address).Msg("Skipping duplicate jetton")
	}

	if v.opts.dryRun {
		logger.Info().
			Int("added", len(result.Added)).
			Int("total", collection.Len()).
			Msg("Dry run, aggregate not written")
		return nil
	}

	if err := jettons.WriteCollection(v.opts.outputFile, collection); err != nil {
		logger.Error().Err(err).Str("file", v.opts.outputFile).Msg("Failed to write aggregate")
		return err
	}
	report.Written = true
	logger.Info().
		Str("file", v.opts.outputFile).
		Int("added", len(result.Added)).
		Int("total", collection.Len()).
		Msg("Aggregate written")
	return nil
}
