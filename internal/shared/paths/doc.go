// Package paths resolves user-supplied path tokens against the session's
// current directory.
//
// Resolution is purely lexical: it never touches disk and never fails. A
// malformed or nonexistent token still yields a syntactically valid absolute
// path, and the filesystem call that consumes it is where failure surfaces.
//
// # Usage
//
//	import "github.com/GriffinCanCode/filemanager/internal/shared/paths"
//
//	full := paths.Resolve("/home/ann", "../bob/notes.txt") // /home/bob/notes.txt
//	parent, moved := paths.Parent("/home/ann")             // /home, true
//	parent, moved = paths.Parent("/")                      // /, false
package paths
