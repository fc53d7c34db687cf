// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sagesearch/copy-assets/internal/domain"
)

// CopyAssetsInput contains the input parameters for CopyAssets.
type CopyAssetsInput struct {
	Manifest *domain.Manifest // nil means domain.DefaultManifest()
}

// CopyAssetsOutput contains the result of a run.
// Fields are ordered to minimize memory padding.
type CopyAssetsOutput struct {
	Outcomes     []domain.Outcome // One per entry, in manifest order
	Destinations []string         // Every configured destination
	Copied       int
	Missing      int
	Failed       int
}

// CopyAssets copies every entry of a manifest into its destination root.
type CopyAssets struct {
	fs       domain.FileSystem
	reporter domain.Reporter
	ignores  domain.IgnoreChecker
	logger   *slog.Logger
}

// NewCopyAssets creates a new CopyAssets use case.
// reporter and logger may be nil.
func NewCopyAssets(fs domain.FileSystem, reporter domain.Reporter, logger *slog.Logger) *CopyAssets {
	if reporter == nil {
		reporter = domain.NopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CopyAssets{
		fs:       fs,
		reporter: reporter,
		logger:   logger,
	}
}

// WithIgnoreChecker enables a warning when the destination root is
// excluded from version control.
func (uc *CopyAssets) WithIgnoreChecker(ic domain.IgnoreChecker) *CopyAssets {
	uc.ignores = ic
	return uc
}

// Execute prepares the destination root, copies every entry and reports
// the summary of configured destinations.
// Only an invalid manifest or a destination setup failure returns an error;
// per-entry problems are recorded in the output and the run continues.
func (uc *CopyAssets) Execute(ctx context.Context, in CopyAssetsInput) (*CopyAssetsOutput, error) {
	m := in.Manifest
	if m == nil {
		m = domain.DefaultManifest()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := uc.EnsureDestinationReady(ctx, m.DestRoot); err != nil {
		return nil, err
	}
	uc.warnIfIgnored(m.DestRoot)

	uc.reporter.Start()
	outcomes, err := uc.CopyAll(ctx, m)
	if err != nil {
		return nil, err
	}

	out := &CopyAssetsOutput{
		Outcomes:     outcomes,
		Destinations: m.Destinations(),
	}
	for _, o := range outcomes {
		switch o.Kind {
		case domain.OutcomeCopied:
			out.Copied++
		case domain.OutcomeSourceMissing:
			out.Missing++
		case domain.OutcomeCopyFailed:
			out.Failed++
		}
	}

	uc.reporter.Summary(out.Destinations)
	uc.logger.Debug("copy finished",
		"copied", out.Copied, "missing", out.Missing, "failed", out.Failed)
	return out, nil
}

// EnsureDestinationReady creates root and any missing parents.
// It succeeds if root already exists. Any failure is fatal for the run.
func (uc *CopyAssets) EnsureDestinationReady(_ context.Context, root string) error {
	if err := uc.fs.MkdirAll(root); err != nil {
		return fmt.Errorf("%w %s: %w", domain.ErrDestinationSetup, root, err)
	}
	uc.logger.Debug("destination ready", "root", root)
	return nil
}

// CopyAll processes the entries of m in order. Each entry yields exactly one
// outcome, which is also sent to the reporter. Missing sources and copy
// errors do not stop the batch; only context cancellation does.
func (uc *CopyAssets) CopyAll(ctx context.Context, m *domain.Manifest) ([]domain.Outcome, error) {
	outcomes := make([]domain.Outcome, 0, len(m.Entries))
	for _, entry := range m.Entries {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		o := uc.copyEntry(entry)
		outcomes = append(outcomes, o)
		uc.reporter.Outcome(o)
	}
	return outcomes, nil
}

func (uc *CopyAssets) copyEntry(entry domain.MappingEntry) domain.Outcome {
	log := uc.logger.With("src", entry.Source, "dst", entry.Destination)

	exists, err := uc.fs.Exists(entry.Source)
	if err != nil {
		log.Warn("cannot stat source", "error", err)
		return domain.Outcome{
			Entry: entry,
			Kind:  domain.OutcomeCopyFailed,
			Err:   fmt.Errorf("%w: stat source: %w", domain.ErrCopyFailed, err),
		}
	}
	if !exists {
		log.Debug("source missing")
		return domain.Outcome{
			Entry: entry,
			Kind:  domain.OutcomeSourceMissing,
			Err:   fmt.Errorf("%w: %s", domain.ErrSourceNotFound, entry.Source),
		}
	}

	if err := uc.fs.CopyFile(entry.Source, entry.Destination); err != nil {
		log.Warn("copy failed", "error", err)
		return domain.Outcome{
			Entry: entry,
			Kind:  domain.OutcomeCopyFailed,
			Err:   fmt.Errorf("%w: %w", domain.ErrCopyFailed, err),
		}
	}

	log.Debug("copied")
	return domain.Outcome{Entry: entry, Kind: domain.OutcomeCopied}
}

func (uc *CopyAssets) warnIfIgnored(root string) {
	if uc.ignores == nil {
		return
	}
	ignored, err := uc.ignores.IsIgnored(root, true)
	if err != nil {
		uc.logger.Debug("gitignore check skipped", "error", err)
		return
	}
	if ignored {
		uc.logger.Warn("destination root is ignored by git; copied assets will not be committed", "root", root)
	}
}
