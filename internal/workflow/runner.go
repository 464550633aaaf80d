package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sublink/internal/config"
	"sublink/internal/ledger"
	"sublink/internal/linker"
	"sublink/internal/logging"
)

// LinkRecorder persists created links. *ledger.Store satisfies it.
type LinkRecorder interface {
	Record(ctx context.Context, link ledger.Link) (ledger.Link, error)
}

// Runner processes input directories.
type Runner struct {
	logger   *slog.Logger
	recorder LinkRecorder
	linker   linker.Linker
	workers  int
	runID    string

	flushMu sync.Mutex
}

// Option customizes a Runner.
type Option func(*Runner)

// WithRecorder stores every created link in recorder.
func WithRecorder(recorder LinkRecorder) Option {
	return func(r *Runner) {
		r.recorder = recorder
	}
}

// WithDryRun plans and logs links without creating or recording them.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) {
		r.linker.DryRun = dryRun
	}
}

// WithWorkers overrides the configured directory parallelism.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// New builds a Runner from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		workers: 1,
		runID:   uuid.NewString(),
	}
	if cfg != nil {
		r.linker.Relative = cfg.Links.Relative
		if cfg.Workflow.Workers > 0 {
			r.workers = cfg.Workflow.Workers
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(logger, "workflow").With(logging.String(logging.FieldRunID, r.runID))
	return r
}

// RunID returns the identifier attached to this runner's logs and ledger rows.
func (r *Runner) RunID() string {
	return r.runID
}

// Process links subtitles in every directory and reports per-directory
// outcomes in input order. It never fails as a whole; problems are confined
// to the directory they concern. Each directory's log lines are emitted
// together once it finishes.
func (r *Runner) Process(ctx context.Context, dirs []string) Summary {
	summary := Summary{
		RunID:       r.runID,
		DryRun:      r.linker.DryRun,
		Directories: make([]DirectoryReport, len(dirs)),
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, dir := range dirs {
		g.Go(func() error {
			buf := logging.NewBuffer()
			logger := buf.Logger(r.logger).With(logging.String(logging.FieldDirectory, dir))
			summary.Directories[i] = r.processDirectory(ctx, dir, logger)

			r.flushMu.Lock()
			defer r.flushMu.Unlock()
			_ = buf.Flush(ctx)
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Info("run complete",
		logging.Int("directories", len(dirs)),
		logging.Int("linked", summary.StatusCount(StatusLinked)),
		logging.Int("skipped", summary.StatusCount(StatusSkipped)),
		logging.Int("failed", summary.StatusCount(StatusFailed)),
		logging.Int("links_created", summary.Count(linker.OutcomeCreated)),
		logging.Bool("dry_run", r.linker.DryRun),
	)
	return summary
}

// ResolveDir returns the absolute, symlink-free form of an input directory,
// the key under which its links are recorded.
func ResolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}
