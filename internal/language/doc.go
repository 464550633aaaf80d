// Package language maps free-text subtitle language labels to ISO 639-1 codes.
//
// The mapping is a static, enumerated table: ISO 639-1 codes, ISO 639-2
// bibliographic and terminology codes, English names, native names, and a
// handful of common release-group aliases. Labels are normalized through
// textutil.NormalizeLabel before lookup so case, accents and separator
// punctuation never matter. Resolution is total: every label yields exactly
// one code or is reported unrecognized.
package language
