// Package filesystem implements the file verbs of the file manager.
//
// This package is organized into specialized modules:
//   - basic: add, rm and cat
//   - directory: ls and mkdir
//   - operations: rn, cp and mv
//   - metadata: hash
//   - archives: compress and decompress (zstd, or gzip for .gz targets)
//
// Every path argument is resolved against the session's current directory
// before any I/O. Verbs that stream bytes are launched as background tasks
// and report their completion line when they finish; the rest complete
// synchronously and return an Outcome directly.
//
// Example Usage:
//
//	ops := &filesystem.FilesystemOps{FS: filesystem.OSFS{}, Launcher: runner, Out: console}
//	basic := &filesystem.BasicOps{FilesystemOps: ops}
//	outcome := basic.Add(ctx, sess, []string{"notes.txt"})
package filesystem
