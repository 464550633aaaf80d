// Package preflight provides filesystem readiness checks for sublink.
//
// These checks run in two contexts:
//   - The link workflow calls CheckDirectoryAccess for every input directory
//     and skips the ones that fail, so nothing is linked into a folder the
//     user cannot write to.
//   - The CLI "sublink config validate" command calls RunAll to confirm the
//     state directory is usable before a real run.
package preflight
