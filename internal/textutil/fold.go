package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases text using Unicode case folding and strips combining marks,
// so "Français" and "FRANCAIS" both become "francais".
//
// Transformers are stateful, so a fresh chain is built per call to keep Fold
// safe for concurrent use.
func Fold(value string) string {
	if value == "" {
		return ""
	}
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, value)
	if err != nil {
		stripped = value
	}
	return cases.Fold().String(stripped)
}

// NormalizeLabel folds value and collapses every run of characters that are
// not letters or digits into a single space. Apostrophes are dropped rather
// than replaced so "Director's" normalizes to "directors".
func NormalizeLabel(value string) string {
	folded := Fold(value)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
