package paths

import (
	"path/filepath"
)

// Resolve joins token onto base. An absolute token overrides base; "." and
// ".." segments collapse lexically.
func Resolve(base, token string) string {
	if filepath.IsAbs(token) {
		return filepath.Clean(token)
	}
	if base == "" {
		if abs, err := filepath.Abs(token); err == nil {
			return abs
		}
	}
	return filepath.Join(base, token)
}

// Parent returns the parent of dir. The boolean is false when dir is already
// a filesystem root and the parent equals dir itself.
func Parent(dir string) (string, bool) {
	clean := filepath.Clean(dir)
	parent := filepath.Dir(clean)
	return parent, parent != clean
}

// Within returns dir joined with the base name of file
func Within(dir, file string) string {
	return filepath.Join(dir, filepath.Base(file))
}
