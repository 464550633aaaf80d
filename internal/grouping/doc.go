// Package grouping classifies the video files directly inside a directory.
//
// Filenames are read with the Jellyfin conventions in mind: several cuts of
// one film are named "Title (Year) - Label.ext", episodes carry an SxxEyy
// marker, and trailing bracket groups hold quality tags. Group returns a
// tagged Mode so callers always handle the Unclassifiable branch explicitly;
// nothing is guessed when filenames disagree.
package grouping
