package filesystem

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Completion messages for streaming operations
const (
	MessageCopied = "File copied successfully"
	MessageMoved  = "File moved successfully"
)

// OperationsOps handles rn, cp and mv
type OperationsOps struct {
	*FilesystemOps
}

// GetOperations returns file manipulation operation definitions
func (o *OperationsOps) GetOperations() []types.Operation {
	return []types.Operation{
		{
			Verb:        "rn",
			Name:        "Rename",
			Description: "Rename or move a path",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "destination", Type: "string", Description: "Destination path", Required: true},
			},
		},
		{
			Verb:        "cp",
			Name:        "Copy File",
			Description: "Copy file contents, overwriting the destination",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source file", Required: true},
				{Name: "destination", Type: "string", Description: "Destination file", Required: true},
			},
			Streaming: true,
		},
		{
			Verb:        "mv",
			Name:        "Move File",
			Description: "Copy a file into a directory, then delete the source",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source file", Required: true},
				{Name: "directory", Type: "string", Description: "Destination directory", Required: true},
			},
			Streaming: true,
		},
	}
}

// Rename renames the first path to the second
func (o *OperationsOps) Rename(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	from, to := resolvePair(sess, args)

	if err := o.FS.Rename(from, to); err != nil {
		return types.Failed(fmt.Errorf("rename %s to %s: %w", from, to, err))
	}
	return types.Success("")
}

// Copy streams source into destination and reports once the last byte is
// written
func (o *OperationsOps) Copy(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	from, to := resolvePair(sess, args)

	return o.launch(ctx, "cp", func(ctx context.Context) (tasks.Result, error) {
		n, err := o.copyFile(from, to)
		if err != nil {
			return tasks.Result{Bytes: n}, err
		}
		return tasks.Result{Message: MessageCopied, Bytes: n}, nil
	})
}

// Move copies source into the destination directory under its base name and
// then deletes the source. If the delete fails the copy is kept and the
// source survives alongside it.
func (o *OperationsOps) Move(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	from, dir := resolvePair(sess, args)
	to := moveTarget(dir, from)

	return o.launch(ctx, "mv", func(ctx context.Context) (tasks.Result, error) {
		n, err := o.copyFile(from, to)
		if err != nil {
			return tasks.Result{Bytes: n}, err
		}
		if err := o.FS.Remove(from); err != nil {
			return tasks.Result{Bytes: n}, fmt.Errorf("remove source %s after copy: %w", from, err)
		}
		return tasks.Result{Message: MessageMoved, Bytes: n}, nil
	})
}

// copyFile opens the source before the destination so a missing source
// never truncates an existing destination
func (o *OperationsOps) copyFile(from, to string) (int64, error) {
	if err := o.checkDistinct(from, to); err != nil {
		return 0, err
	}

	src, err := o.FS.OpenRead(from)
	if err != nil {
		return 0, fmt.Errorf("open source %s: %w", from, err)
	}
	defer src.Close()

	dst, err := o.FS.OpenWrite(to)
	if err != nil {
		return 0, fmt.Errorf("open destination %s: %w", to, err)
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("copy %s to %s: %w", from, to, err)
	}
	return n, nil
}
