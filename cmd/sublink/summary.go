package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"sublink/internal/linker"
	"sublink/internal/workflow"
)

func renderSummary(summary workflow.Summary, colorize bool) string {
	var b strings.Builder

	title := "Run " + summary.RunID
	if summary.DryRun {
		title += " (dry run)"
	}
	for _, line := range renderSectionHeader(title, colorize) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if len(summary.Directories) > 0 {
		linked := "Created"
		if summary.DryRun {
			linked = "Planned"
		}
		columns := []column{
			{header: "Directory", maxWidth: 48},
			{header: "Mode"},
			{header: "Status"},
			{header: "Videos", align: alignRight},
			{header: "Subs", align: alignRight},
			{header: linked, align: alignRight},
			{header: "Unchanged", align: alignRight},
			{header: "Exists", align: alignRight},
			{header: "Failed", align: alignRight},
			{header: "Reason", maxWidth: 40},
		}
		rows := make([][]string, 0, len(summary.Directories))
		for _, dir := range summary.Directories {
			created := dir.Count(linker.OutcomeCreated)
			if summary.DryRun {
				created = dir.Count(linker.OutcomePlanned)
			}
			rows = append(rows, []string{
				displayPath(dir.Dir),
				dir.Mode,
				string(dir.Status),
				strconv.Itoa(dir.Videos),
				strconv.Itoa(dir.Subtitles),
				strconv.Itoa(created),
				strconv.Itoa(dir.Count(linker.OutcomeUnchanged)),
				strconv.Itoa(dir.Count(linker.OutcomeExists)),
				strconv.Itoa(dir.Count(linker.OutcomeFailed)),
				dir.Reason,
			})
		}
		b.WriteString(renderTable(columns, rows))
		b.WriteByte('\n')
	}

	for _, line := range summaryStatusLines(summary, colorize) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func summaryStatusLines(summary workflow.Summary, colorize bool) []string {
	lines := make([]string, 0, 4)

	linked := summary.StatusCount(workflow.StatusLinked)
	lines = append(lines, renderStatusLine("Linked", statusOK,
		fmt.Sprintf("%d of %d directories", linked, len(summary.Directories)), colorize))

	if skipped := summary.StatusCount(workflow.StatusSkipped); skipped > 0 {
		lines = append(lines, renderStatusLine("Skipped", statusWarn, pluralize(skipped, "directory", "directories"), colorize))
	}
	if failed := summary.StatusCount(workflow.StatusFailed); failed > 0 {
		lines = append(lines, renderStatusLine("Failed", statusError, pluralize(failed, "directory", "directories"), colorize))
	}

	if summary.DryRun {
		lines = append(lines, renderStatusLine("Links", statusInfo,
			pluralize(summary.Count(linker.OutcomePlanned), "link", "links")+" would be created", colorize))
		return lines
	}
	kind := statusOK
	if summary.Count(linker.OutcomeFailed) > 0 {
		kind = statusError
	}
	lines = append(lines, renderStatusLine("Links", kind,
		fmt.Sprintf("%d created, %d unchanged, %d blocked, %d failed",
			summary.Count(linker.OutcomeCreated),
			summary.Count(linker.OutcomeUnchanged),
			summary.Count(linker.OutcomeExists),
			summary.Count(linker.OutcomeFailed)), colorize))
	return lines
}

func renderUnlinkReports(reports []workflow.UnlinkReport) string {
	if len(reports) == 0 {
		return "No recorded links for the given directories\n"
	}
	columns := []column{
		{header: "Directory", maxWidth: 40},
		{header: "Link", maxWidth: 48},
		{header: "Outcome"},
		{header: "Error", maxWidth: 40},
	}
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []string{
			displayPath(report.Dir),
			filepath.Base(report.Link),
			string(report.Outcome),
			report.Error,
		})
	}
	return renderTable(columns, rows) + "\n"
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
