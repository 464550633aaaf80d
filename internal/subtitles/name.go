package subtitles

import (
	"path/filepath"
	"regexp"
	"strings"

	"sublink/internal/language"
)

// Extensions lists the recognized subtitle file extensions (lowercase, with dot).
var Extensions = []string{".srt", ".ass", ".ssa", ".sub", ".vtt", ".smi", ".sup"}

var prefixPattern = regexp.MustCompile(`^(\d+)[_\-. ]+(.+)$`)

// IsSubtitle reports whether name carries a recognized subtitle extension.
func IsSubtitle(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ParseName splits a subtitle filename into its numeric prefix and language
// label. Without a recognizable prefix the whole stem is the label, which
// includes stems made only of digits.
func ParseName(name string) (prefix, label string) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if match := prefixPattern.FindStringSubmatch(stem); match != nil {
		return match[1], strings.TrimSpace(match[2])
	}
	return "", strings.TrimSpace(stem)
}

// resolveLabel resolves label as a whole, then falls back to its trailing
// dot-separated segments, longest first, so sidecars already named
// "<video>.<code>" or "<video>.<code>.forced" are recognized. It returns the
// part of the label that matched.
func resolveLabel(label string) (code, matched string, ok bool) {
	if code, ok := language.Resolve(label); ok {
		return code, label, true
	}
	segments := strings.Split(label, ".")
	for i := 1; i < len(segments); i++ {
		tail := strings.Join(segments[i:], ".")
		if code, ok := language.Resolve(tail); ok {
			return code, tail, true
		}
	}
	return "", label, false
}
