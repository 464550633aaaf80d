// Package subtitles discovers external subtitle files below a directory and
// resolves the language each one carries in its filename.
//
// Files are expected to follow `<number>_<language>.<ext>` (the number and
// separator are optional). The walk is lexical, so the emitted candidate order
// is reproducible and callers can rely on "first candidate wins" semantics.
package subtitles
