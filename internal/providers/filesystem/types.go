package filesystem

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

var (
	// ErrIsDirectory is returned when a file operation targets a directory
	ErrIsDirectory = errors.New("is a directory")
	// ErrSamePath is returned when source and destination are the same file
	ErrSamePath = errors.New("source and destination are the same")
	// ErrUnsupportedFormat is returned when input is not a known compressed stream
	ErrUnsupportedFormat = errors.New("unsupported compression format")
)

// FS is the filesystem surface the verbs run against
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]string, error)
	CreateFile(path string, exclusive bool) error
	MkdirAll(path string) error
	OpenRead(path string) (io.ReadCloser, error)
	OpenWrite(path string) (io.WriteCloser, error)
	Rename(from, to string) error
	Remove(path string) error
}

// Launcher starts streaming operations in the background
type Launcher interface {
	Launch(ctx context.Context, verb string, fn tasks.Func) *tasks.Task
}

// FilesystemOps provides the collaborators shared by all file verbs
type FilesystemOps struct {
	FS       FS
	Launcher Launcher
	// Out receives streamed file contents for cat
	Out io.Writer
}

// launch starts fn as a task and returns the launched outcome
func (ops *FilesystemOps) launch(ctx context.Context, verb string, fn tasks.Func) types.Outcome {
	return types.Launched(ops.Launcher.Launch(ctx, verb, fn))
}
