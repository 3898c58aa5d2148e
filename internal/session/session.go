// Package session holds the state of one interactive file manager session:
// the current directory and the display name captured at startup.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/GriffinCanCode/filemanager/internal/shared/id"
	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
)

// ErrNotDirectory is returned by Enter when the target is not a directory
var ErrNotDirectory = errors.New("not a directory")

// Statter reports file metadata
type Statter interface {
	Stat(path string) (fs.FileInfo, error)
}

// Session is the navigation state of one REPL. The current directory is
// mutated only through Ascend and Enter.
type Session struct {
	id          id.SessionID
	displayName string
	stat        Statter

	mu      sync.RWMutex
	current string
}

// New creates a session rooted at start, which must be an absolute directory
func New(start, displayName string, stat Statter) *Session {
	return &Session{
		id:          id.NewSessionID(),
		displayName: displayName,
		stat:        stat,
		current:     start,
	}
}

// ID returns the session identifier
func (s *Session) ID() id.SessionID {
	return s.id
}

// DisplayName returns the name used in greetings, possibly empty
func (s *Session) DisplayName() string {
	return s.displayName
}

// Current returns the current directory
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Resolve turns a user token into an absolute path against the current
// directory
func (s *Session) Resolve(token string) string {
	return paths.Resolve(s.Current(), token)
}

// Ascend moves to the parent directory. At a filesystem root it does nothing
// and reports false.
func (s *Session) Ascend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := paths.Parent(s.current)
	if ok {
		s.current = parent
	}
	return ok
}

// Enter makes candidate the current directory. The existence check and the
// update are not atomic with respect to other processes.
func (s *Session) Enter(candidate string) error {
	target := s.Resolve(candidate)

	info, err := s.stat.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", target, ErrNotDirectory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = target
	return nil
}
