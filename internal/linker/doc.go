// Package linker turns a classified video group and its subtitle candidates
// into symlinks a media server discovers on its own.
//
// Plan picks the first candidate per language for every video and names the
// link `<video-base>.<code>.<ext>` next to the video. Linker.Apply creates the
// link, leaving any existing file or foreign link at that path untouched.
package linker
