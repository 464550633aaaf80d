package workflow

import (
	"sublink/internal/linker"
)

// Status is the overall outcome for one input directory.
type Status string

const (
	StatusLinked  Status = "linked"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// LinkReport describes one planned link and what happened to it.
type LinkReport struct {
	Video    string         `json:"video"`
	Language string         `json:"language"`
	Source   string         `json:"source"`
	Link     string         `json:"link"`
	Target   string         `json:"target,omitempty"`
	Outcome  linker.Outcome `json:"outcome"`
	Error    string         `json:"error,omitempty"`
}

// DirectoryReport summarizes one input directory.
type DirectoryReport struct {
	Dir       string       `json:"directory"`
	Status    Status       `json:"status"`
	Mode      string       `json:"mode,omitempty"`
	Reason    string       `json:"reason,omitempty"`
	Videos    int          `json:"videos"`
	Subtitles int          `json:"subtitles"`
	Links     []LinkReport `json:"links,omitempty"`
}

// Count returns how many links in the report ended with outcome.
func (r DirectoryReport) Count(outcome linker.Outcome) int {
	n := 0
	for _, link := range r.Links {
		if link.Outcome == outcome {
			n++
		}
	}
	return n
}

// Summary is the result of one Process call.
type Summary struct {
	RunID       string            `json:"run_id"`
	DryRun      bool              `json:"dry_run"`
	Directories []DirectoryReport `json:"directories"`
}

// Count returns how many links across all directories ended with outcome.
func (s Summary) Count(outcome linker.Outcome) int {
	n := 0
	for _, dir := range s.Directories {
		n += dir.Count(outcome)
	}
	return n
}

// StatusCount returns how many directories ended with status.
func (s Summary) StatusCount(status Status) int {
	n := 0
	for _, dir := range s.Directories {
		if dir.Status == status {
			n++
		}
	}
	return n
}

func newLinkReport(result linker.Result) LinkReport {
	report := LinkReport{
		Video:    result.Assignment.Video.Path,
		Language: result.Assignment.Language,
		Source:   result.Assignment.Source,
		Link:     result.Assignment.LinkPath,
		Target:   result.Target,
		Outcome:  result.Outcome,
	}
	if result.Err != nil {
		report.Error = result.Err.Error()
	}
	return report
}
