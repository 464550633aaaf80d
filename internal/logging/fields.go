package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line so skips and failures stand apart from successes.
	FieldEventType = "event_type"
	// FieldErrorHint carries the next step a user should take after a warning or error.
	FieldErrorHint = "error_hint"
	// FieldDecisionType names the decision being logged (e.g. grouping).
	FieldDecisionType = "decision_type"
	// FieldRunID is the standardized key for the per-invocation run identifier.
	FieldRunID = "run_id"
	// FieldDirectory is the input directory a log line concerns.
	FieldDirectory = "directory"
)

// Event types emitted by the link workflow.
const (
	EventDirectorySkipped  = "directory_skipped"
	EventDirectoryFailed   = "directory_failed"
	EventSubtitleSkipped   = "subtitle_skipped"
	EventLinkCreated       = "link_created"
	EventLinkPlanned       = "link_planned"
	EventLinkUnchanged     = "link_unchanged"
	EventLinkExists        = "link_exists"
	EventLinkFailed        = "link_failed"
	EventLinkRemoved       = "link_removed"
	EventLedgerWriteFailed = "ledger_write_failed"
)
