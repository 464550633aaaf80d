// Package logging assembles the structured slog loggers used across sublink.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the attribute keys (component, event_type,
// error_hint, decision_*) every component logs with. Buffer holds one
// directory's records until the directory finishes so parallel runs still
// print each directory's outcome as a contiguous block.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit lines with the same shape as the rest of the tool.
package logging
