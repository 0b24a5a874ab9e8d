package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/ruleslint/internal/logging"
	"github.com/yaklabco/ruleslint/pkg/discovery"
	"github.com/yaklabco/ruleslint/pkg/validator"
)

// ErrTargetNotFound is returned when the target path does not exist.
var ErrTargetNotFound = errors.New("target does not exist")

// Runner validates a file or a discovered set of files.
type Runner struct {
	// Validator runs the checks. It is shared by all workers.
	Validator *validator.Validator
}

// New creates a new Runner with the given validator.
func New(v *validator.Validator) *Runner {
	return &Runner{Validator: v}
}

// Run validates opts.Target.
//
// A file target is validated directly. A directory target goes through
// discovery; when discovery finds nothing the result holds a single outcome
// for the directory carrying one error. Outcomes are returned in discovery
// order regardless of Jobs.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	info, err := os.Stat(opts.Target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, opts.Target)
		}
		return nil, fmt.Errorf("stat %s: %w", opts.Target, err)
	}

	result := &Result{
		Target: opts.Target,
		Stats:  newStats(),
	}

	if !info.IsDir() {
		result.Mode = ModeFile
		result.Stats.FilesDiscovered = 1
		result.accumulate(FileOutcome{
			Path:   opts.Target,
			Report: r.Validator.ValidateFile(ctx, opts.Target),
		})
		return result, nil
	}

	result.Mode = ModeDirectory

	found, err := discovery.Discover(ctx, discovery.Options{
		Root:         opts.Target,
		Recursive:    opts.Recursive,
		Ignore:       opts.Ignore,
		SkipVendored: opts.SkipVendored,
	})
	if errors.Is(err, discovery.ErrNoRulesFiles) {
		logger.Debug("discovery found nothing", logging.FieldTarget, opts.Target, logging.FieldRecursive, opts.Recursive)
		result.accumulate(FileOutcome{Path: opts.Target, Report: validator.NoFilesFound()})
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	result.Source = found.Source
	result.Stats.FilesDiscovered = len(found.Files)
	logger.Debug("discovered files",
		logging.FieldSource, found.Source,
		logging.FieldFilesDiscovered, len(found.Files),
	)

	outcomes, err := r.validateAll(ctx, found.Files, opts.effectiveJobs())
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	if err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// validateAll validates files with at most jobs concurrent workers.
// Outcomes for files not reached before cancellation are omitted.
func (r *Runner) validateAll(ctx context.Context, files []string, jobs int) ([]FileOutcome, error) {
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = FileOutcome{Path: path, Report: r.Validator.ValidateFile(groupCtx, path)}
			done[i] = true
			return nil
		})
	}

	err := group.Wait()

	completed := make([]FileOutcome, 0, len(files))
	for i, outcome := range outcomes {
		if done[i] {
			completed = append(completed, outcome)
		}
	}
	return completed, err
}
