// Package workflow runs the link pipeline over the directories named on the
// command line.
//
// For each directory the Runner checks access, groups the videos found
// directly inside it, scans the whole tree for subtitles, plans one link per
// video and language, and creates the links. A failure is confined to the
// directory, subtitle, or link it concerns and is reported in the Summary.
//
// Directories may be processed concurrently (workflow.workers). Each
// directory logs into its own buffer which is flushed in one piece when the
// directory completes, so log output stays grouped per directory. A flock
// in the state directory keeps two runs from working at the same time.
package workflow
