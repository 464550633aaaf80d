// Package textutil provides the text normalization shared by language label
// resolution and video title comparison.
//
// Both callers need the same notion of "equal text": case differences,
// accents, and separator punctuation (underscores, dots, dashes) must not
// matter. Fold handles case and accents via golang.org/x/text; NormalizeLabel
// additionally reduces every run of non-alphanumeric characters to a single
// space so "Director's_Cut", "directors cut" and "DIRECTOR'S.CUT" compare
// equal.
package textutil
