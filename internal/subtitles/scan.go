package subtitles

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"sublink/internal/logging"
)

// Candidate is a subtitle file whose language label resolved to a code.
type Candidate struct {
	Path     string
	Name     string
	Ext      string
	Prefix   string
	Label    string
	Language string
}

// Scan walks root recursively and returns every subtitle with a recognized
// language label. Entries are visited in lexical order within each directory,
// which fixes the order of the returned slice. Symlinks are never followed or
// returned, so links created by earlier runs do not feed back into the scan.
// Unrecognized labels and unreadable subdirectories are logged and skipped;
// only a failure to read root itself is returned as an error.
func Scan(root string, logger *slog.Logger) ([]Candidate, error) {
	logger = logging.NewComponentLogger(logger, "subtitles")

	var candidates []Candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logging.WarnWithContext(logger, "subtitle search skipped unreadable path", logging.EventSubtitleSkipped,
				logging.String("path", path),
				logging.Error(walkErr),
				logging.String(logging.FieldErrorHint, "check permissions on the path"),
				logging.String(logging.FieldImpact, "subtitles below this path are ignored"),
			)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if !IsSubtitle(name) {
			return nil
		}

		prefix, label := ParseName(name)
		code, label, ok := resolveLabel(label)
		if !ok {
			logging.WarnWithContext(logger, "subtitle language not recognized", logging.EventSubtitleSkipped,
				logging.String("subtitle", path),
				logging.String("label", label),
				logging.String(logging.FieldErrorHint, "name the file <number>_<language>.<ext>, e.g. 2_English.srt"),
				logging.String(logging.FieldImpact, "subtitle not linked"),
			)
			return nil
		}

		candidates = append(candidates, Candidate{
			Path:     path,
			Name:     name,
			Ext:      filepath.Ext(name),
			Prefix:   prefix,
			Label:    label,
			Language: code,
		})
		logger.Debug("subtitle found",
			logging.String("subtitle", path),
			logging.String("label", label),
			logging.String("language", code),
		)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan subtitles in %s: %w", root, err)
	}
	return candidates, nil
}
