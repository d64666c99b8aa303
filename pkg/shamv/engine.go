// Package shamv provides the main API for renaming files after their content digest.
package shamv

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sivchari/shamv/internal/config"
	"github.com/sivchari/shamv/internal/digest"
	"github.com/sivchari/shamv/internal/logging"
	"github.com/sivchari/shamv/internal/rename"
	"github.com/sivchari/shamv/internal/report"
)

// ProgramName prefixes every diagnostic written to stderr.
const ProgramName = "shamv"

// Engine validates, hashes and renames a batch of files.
type Engine struct {
	config   *config.Config
	hasher   *digest.FileHasher
	renamer  *rename.Renamer
	reporter *report.Generator
	logger   *slog.Logger
	stderr   io.Writer
}

// NewEngine creates a new engine. cfg must have been validated.
// A nil logger discards diagnostics.
func NewEngine(cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) (*Engine, error) {
	hasher, err := digest.NewFileHasher(cfg.DigestAlgorithm())
	if err != nil {
		return nil, fmt.Errorf("failed to create hasher: %w", err)
	}

	reporter, err := report.New(cfg, stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to create reporter: %w", err)
	}

	if logger == nil {
		logger = logging.Discard()
	}

	return &Engine{
		config:   cfg,
		hasher:   hasher,
		renamer:  &rename.Renamer{Force: cfg.Force},
		reporter: reporter,
		logger:   logger,
		stderr:   stderr,
	}, nil
}

// Run processes paths in order. Validation and hashing failures abort the
// whole batch before anything is renamed; rename failures are reported per
// file and the remaining files are still attempted.
func (e *Engine) Run(paths []string) error {
	if len(paths) == 0 {
		return ErrInsufficientArguments
	}

	alg := e.hasher.Algorithm()

	// 1. Validate every path before touching content
	if err := e.validate(paths); err != nil {
		return err
	}

	e.logger.Debug("validated input files", "count", len(paths))

	// 2. Hash all files
	digests, err := e.hasher.HashFiles(paths)
	if err != nil {
		return err
	}

	plans := make([]rename.Plan, len(paths))
	for i, path := range paths {
		plans[i] = rename.NewPlan(path, digests[i], alg.String())
		e.logger.Debug("computed digest", "path", path, "algorithm", alg.String(), "digest", digests[i])
	}

	// 3. Print or apply
	summary := &report.Summary{
		Algorithm: alg.String(),
		DryRun:    e.config.DryRun,
		Results:   make([]report.Result, 0, len(plans)),
	}

	failed := 0

	for _, plan := range plans {
		result := e.apply(plan)
		if result.Status == report.StatusError {
			failed++
		}

		summary.Results = append(summary.Results, result)
	}

	if err := e.reporter.Generate(summary); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRenameFailed, failed, len(plans))
	}

	return nil
}

func (e *Engine) validate(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w %s", ErrFileNotFound, path)
		}
	}

	return nil
}

func (e *Engine) apply(plan rename.Plan) report.Result {
	if e.config.DryRun {
		status := report.StatusPlanned
		if plan.Unchanged() {
			status = report.StatusUnchanged
		}

		return report.Result{Plan: plan, Status: status}
	}

	outcome, err := e.renamer.Apply(plan)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", ProgramName, err)
		e.logger.Debug("rename failed", "source", plan.Source, "destination", plan.Destination, "error", err)

		return report.Result{Plan: plan, Status: report.StatusError, Error: err.Error()}
	}

	if outcome == rename.OutcomeUnchanged {
		e.logger.Debug("file already content-named", "path", plan.Source)

		return report.Result{Plan: plan, Status: report.StatusUnchanged}
	}

	e.logger.Debug("renamed file", "source", plan.Source, "destination", plan.Destination)

	return report.Result{Plan: plan, Status: report.StatusRenamed}
}
