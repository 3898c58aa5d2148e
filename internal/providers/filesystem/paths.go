package filesystem

import (
	"fmt"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
)

// resolvePair resolves a source and destination token against the session
func resolvePair(sess *session.Session, args []string) (string, string) {
	return sess.Resolve(args[0]), sess.Resolve(args[1])
}

// moveTarget returns where mv places src inside the directory dir
func moveTarget(dir, src string) string {
	return paths.Within(dir, src)
}

// checkDistinct refuses a copy of a file onto itself, which would truncate
// the source before it is read
func (ops *FilesystemOps) checkDistinct(from, to string) error {
	if from == to {
		return fmt.Errorf("%s: %w", from, ErrSamePath)
	}
	src, err := ops.FS.Stat(from)
	if err != nil {
		return err
	}
	dst, err := ops.FS.Stat(to)
	if err != nil {
		// A missing destination is the common case
		return nil
	}
	if os.SameFile(src, dst) {
		return fmt.Errorf("%s: %w", to, ErrSamePath)
	}
	return nil
}
