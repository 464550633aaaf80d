package workflow

import (
	"context"
	"fmt"
	"os"

	"sublink/internal/fileutil"
	"sublink/internal/ledger"
	"sublink/internal/logging"
)

// LinkStore is the ledger access Unlink needs. *ledger.Store satisfies it.
type LinkStore interface {
	ForDirectory(ctx context.Context, dir string) ([]ledger.Link, error)
	Delete(ctx context.Context, id int64) error
}

// UnlinkOutcome classifies what Unlink did with one recorded link.
type UnlinkOutcome string

const (
	UnlinkRemoved UnlinkOutcome = "removed"
	UnlinkPlanned UnlinkOutcome = "planned"
	UnlinkMissing UnlinkOutcome = "missing"
	UnlinkKept    UnlinkOutcome = "kept"
	UnlinkFailed  UnlinkOutcome = "failed"
)

// UnlinkReport describes one recorded link visited by Unlink.
type UnlinkReport struct {
	Dir     string        `json:"directory"`
	Link    string        `json:"link"`
	Source  string        `json:"source"`
	Outcome UnlinkOutcome `json:"outcome"`
	Error   string        `json:"error,omitempty"`
}

// Unlink removes the links recorded for dirs. A link is removed only while
// it still points at the recorded source; anything else now at that path is
// kept. Rows whose link has vanished are dropped from the ledger.
func (r *Runner) Unlink(ctx context.Context, store LinkStore, dirs []string) ([]UnlinkReport, error) {
	var reports []UnlinkReport
	for _, input := range dirs {
		dir, err := ResolveDir(input)
		if err != nil && dir == "" {
			return reports, err
		}
		logger := r.logger.With(logging.String(logging.FieldDirectory, dir))

		links, err := store.ForDirectory(ctx, dir)
		if err != nil {
			return reports, fmt.Errorf("list links for %s: %w", dir, err)
		}
		if len(links) == 0 {
			logger.Info("no recorded links for directory")
			continue
		}

		for _, link := range links {
			report := UnlinkReport{Dir: dir, Link: link.LinkPath, Source: link.SourcePath}
			report.Outcome, err = r.unlinkOne(ctx, store, link)
			if err != nil {
				report.Error = err.Error()
			}
			attrs := []logging.Attr{
				logging.String("link", link.LinkPath),
				logging.String("outcome", string(report.Outcome)),
			}
			switch report.Outcome {
			case UnlinkKept:
				logging.WarnWithContext(logger, "link path no longer points at the recorded subtitle", logging.EventLinkExists, append(attrs,
					logging.String(logging.FieldErrorHint, "remove the file by hand if it is no longer wanted"),
					logging.String(logging.FieldImpact, "file kept"),
				)...)
			case UnlinkFailed:
				logging.ErrorWithContext(logger, "could not remove link", logging.EventLinkFailed, append(attrs, logging.Error(err))...)
			default:
				logger.Info("recorded link handled", logging.Args(append(attrs,
					logging.String(logging.FieldEventType, logging.EventLinkRemoved))...)...)
			}
			reports = append(reports, report)
		}
	}
	return reports, nil
}

func (r *Runner) unlinkOne(ctx context.Context, store LinkStore, link ledger.Link) (UnlinkOutcome, error) {
	isLink, err := fileutil.IsSymlink(link.LinkPath)
	if err != nil {
		return UnlinkFailed, err
	}
	if !isLink {
		if _, statErr := os.Lstat(link.LinkPath); statErr == nil {
			return UnlinkKept, nil
		}
		if r.linker.DryRun {
			return UnlinkMissing, nil
		}
		return UnlinkMissing, store.Delete(ctx, link.ID)
	}

	same, err := fileutil.SymlinkPointsTo(link.LinkPath, link.SourcePath)
	if err != nil {
		return UnlinkFailed, err
	}
	if !same {
		return UnlinkKept, nil
	}
	if r.linker.DryRun {
		return UnlinkPlanned, nil
	}
	if err := os.Remove(link.LinkPath); err != nil {
		return UnlinkFailed, fmt.Errorf("remove %s: %w", link.LinkPath, err)
	}
	if err := store.Delete(ctx, link.ID); err != nil {
		return UnlinkFailed, err
	}
	return UnlinkRemoved, nil
}
