// Package ledger persists the symlinks sublink has created in a SQLite
// database under the state directory.
//
// Rows record which run created a link, the video and subtitle it connects,
// and the language code. The history command lists them and the unlink
// command uses them to remove only links sublink owns.
package ledger
