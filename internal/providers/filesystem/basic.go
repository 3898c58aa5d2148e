package filesystem

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// BasicOps handles add, rm and cat
type BasicOps struct {
	*FilesystemOps
}

// GetOperations returns basic file operation definitions
func (b *BasicOps) GetOperations() []types.Operation {
	return []types.Operation{
		{
			Verb:        "add",
			Name:        "Create File",
			Description: "Create an empty file; fails if it already exists",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
		},
		{
			Verb:        "rm",
			Name:        "Delete File",
			Description: "Delete a file (directories are refused)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
		},
		{
			Verb:        "cat",
			Name:        "Print File",
			Description: "Stream file contents to the console as text",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Streaming: true,
		},
	}
}

// Add creates an empty file with exclusive-create semantics, so an existing
// file is never truncated
func (b *BasicOps) Add(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	path := sess.Resolve(args[0])

	if err := b.FS.CreateFile(path, true); err != nil {
		return types.Failed(fmt.Errorf("create %s: %w", path, err))
	}
	return types.Success("")
}

// Remove deletes a file
func (b *BasicOps) Remove(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	path := sess.Resolve(args[0])

	if err := b.FS.Remove(path); err != nil {
		return types.Failed(fmt.Errorf("remove %s: %w", path, err))
	}
	return types.Success("")
}

// Cat streams a file to the console followed by a newline. Output already
// written stays on the console if the stream fails part way.
func (b *BasicOps) Cat(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	path := sess.Resolve(args[0])

	return b.launch(ctx, "cat", func(ctx context.Context) (tasks.Result, error) {
		src, err := b.FS.OpenRead(path)
		if err != nil {
			return tasks.Result{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer src.Close()

		n, err := io.Copy(b.Out, NewTextReader(src))
		if err != nil {
			return tasks.Result{Bytes: n}, fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := io.WriteString(b.Out, "\n"); err != nil {
			return tasks.Result{Bytes: n}, err
		}
		return tasks.Result{Bytes: n}, nil
	})
}
