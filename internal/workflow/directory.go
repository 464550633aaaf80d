package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sublink/internal/grouping"
	"sublink/internal/ledger"
	"sublink/internal/linker"
	"sublink/internal/logging"
	"sublink/internal/preflight"
	"sublink/internal/subtitles"
)

func (r *Runner) processDirectory(ctx context.Context, input string, logger *slog.Logger) DirectoryReport {
	report := DirectoryReport{Dir: input}

	if err := ctx.Err(); err != nil {
		return r.skip(logger, report, "run canceled before the directory started", "rerun sublink for this directory")
	}

	check := preflight.CheckDirectoryAccess("input directory", input)
	if !check.Passed {
		return r.rejectInput(logger, report, check)
	}

	dir, err := ResolveDir(input)
	if err != nil {
		return r.fail(logger, report, "could not resolve directory", err)
	}
	report.Dir = dir

	group, err := grouping.Group(dir)
	if errors.Is(err, grouping.ErrNoVideos) {
		return r.skip(logger, report, "no video files found", "place video files directly in the directory; subdirectories are not searched for videos")
	}
	if err != nil {
		return r.fail(logger, report, "could not list videos", err)
	}
	report.Mode = group.Mode.String()
	report.Videos = len(group.Videos)

	if !group.Linkable() {
		report.Reason = group.Reason
		return r.skip(logger, report, "videos could not be grouped: "+group.Reason,
			"name versions '<Title> - <Label>.<ext>' or give every episode an SxxEyy marker")
	}
	logger.Info("videos grouped", logging.Args(append(
		logging.DecisionAttrs("grouping", group.Mode.String(), fmt.Sprintf("%d video(s)", len(group.Videos))),
		logging.Int("videos", len(group.Videos)),
	)...)...)

	candidates, err := subtitles.Scan(dir, logger)
	if err != nil {
		return r.fail(logger, report, "could not scan subtitles", err)
	}
	report.Subtitles = len(candidates)

	assignments := linker.Plan(group, candidates)
	if len(assignments) == 0 && len(candidates) > 0 {
		report.Status = StatusLinked
		report.Reason = "subtitles already named for the media server"
		logger.Info("nothing to link", logging.String("reason", report.Reason))
		return report
	}
	if len(assignments) == 0 {
		return r.skip(logger, report, "no subtitles with a recognized language",
			"name subtitle files '<number>_<language>.<ext>', e.g. 2_English.srt")
	}

	for _, assignment := range assignments {
		result := r.linker.Apply(assignment)
		r.logResult(logger, result)
		if result.Outcome == linker.OutcomeCreated {
			r.record(ctx, logger, dir, result)
		}
		report.Links = append(report.Links, newLinkReport(result))
	}

	report.Status = StatusLinked
	logger.Info("directory processed",
		logging.String("mode", report.Mode),
		logging.Int("videos", report.Videos),
		logging.Int("subtitles", report.Subtitles),
		logging.Int("created", report.Count(linker.OutcomeCreated)),
		logging.Int("unchanged", report.Count(linker.OutcomeUnchanged)),
		logging.Int("exists", report.Count(linker.OutcomeExists)),
		logging.Int("failed", report.Count(linker.OutcomeFailed)),
		logging.Int("planned", report.Count(linker.OutcomePlanned)),
	)
	return report
}

func (r *Runner) rejectInput(logger *slog.Logger, report DirectoryReport, check preflight.Result) DirectoryReport {
	var msg, hint string
	switch check.Problem {
	case preflight.ProblemNotDirectory:
		msg, hint = "not a folder, ignoring", "pass directories, not files"
	case preflight.ProblemMissing:
		msg, hint = "directory does not exist", "check the path for typos"
	case preflight.ProblemPermission:
		msg, hint = "directory is not readable and writable", "fix permissions so sublink can create links here"
	default:
		msg, hint = "directory could not be inspected", "check the path and its permissions"
	}
	report.Status = StatusFailed
	report.Reason = msg
	logging.ErrorWithContext(logger, msg, logging.EventDirectoryFailed,
		logging.String("detail", check.Detail),
		logging.String(logging.FieldErrorHint, hint),
	)
	return report
}

func (r *Runner) skip(logger *slog.Logger, report DirectoryReport, reason, hint string) DirectoryReport {
	report.Status = StatusSkipped
	if report.Reason == "" {
		report.Reason = reason
	}
	logging.WarnWithContext(logger, "directory skipped", logging.EventDirectorySkipped,
		logging.String("reason", reason),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "no links created for this directory"),
	)
	return report
}

func (r *Runner) fail(logger *slog.Logger, report DirectoryReport, reason string, err error) DirectoryReport {
	report.Status = StatusFailed
	report.Reason = fmt.Sprintf("%s: %v", reason, err)
	logging.ErrorWithContext(logger, reason, logging.EventDirectoryFailed,
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check the directory and its permissions"),
	)
	return report
}

func (r *Runner) logResult(logger *slog.Logger, result linker.Result) {
	a := result.Assignment
	attrs := []logging.Attr{
		logging.String("link", a.LinkPath),
		logging.String("source", a.Source),
		logging.String("language", a.Language),
	}
	switch result.Outcome {
	case linker.OutcomeCreated:
		logger.Info("symlink created", logging.Args(append(attrs,
			logging.String(logging.FieldEventType, logging.EventLinkCreated),
			logging.String("target", result.Target))...)...)
	case linker.OutcomePlanned:
		logger.Info("symlink planned", logging.Args(append(attrs,
			logging.String(logging.FieldEventType, logging.EventLinkPlanned),
			logging.String("target", result.Target))...)...)
	case linker.OutcomeUnchanged:
		logger.Info("symlink already in place", logging.Args(append(attrs,
			logging.String(logging.FieldEventType, logging.EventLinkUnchanged))...)...)
	case linker.OutcomeExists:
		logging.WarnWithContext(logger, "link path already taken", logging.EventLinkExists, append(attrs,
			logging.String(logging.FieldErrorHint, "remove or rename the existing file to let sublink link it"),
			logging.String(logging.FieldImpact, "subtitle not linked"),
		)...)
	default:
		logging.ErrorWithContext(logger, "symlink creation failed", logging.EventLinkFailed, append(attrs,
			logging.Error(result.Err),
			logging.String(logging.FieldErrorHint, "check permissions in the video directory"),
		)...)
	}
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, dir string, result linker.Result) {
	if r.recorder == nil {
		return
	}
	a := result.Assignment
	_, err := r.recorder.Record(ctx, ledger.Link{
		RunID:      r.runID,
		Directory:  dir,
		VideoPath:  a.Video.Path,
		Language:   a.Language,
		SourcePath: a.Source,
		LinkPath:   a.LinkPath,
	})
	if err != nil {
		logging.WarnWithContext(logger, "could not record link in ledger", logging.EventLedgerWriteFailed,
			logging.String("link", a.LinkPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "sublink unlink will not know about this link"),
			logging.String(logging.FieldImpact, "link created but not tracked"),
		)
	}
}
