package filesystem

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Completion messages for codec operations
const (
	MessageCompressed   = "File compressed successfully"
	MessageDecompressed = "File decompressed successfully"
)

// ArchiveOps handles compress and decompress
type ArchiveOps struct {
	*FilesystemOps
	Codec *Codec
}

// GetOperations returns codec operation definitions
func (a *ArchiveOps) GetOperations() []types.Operation {
	return []types.Operation{
		{
			Verb:        "compress",
			Name:        "Compress File",
			Description: "Write a compressed copy (zstd, or gzip for .gz destinations)",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source file", Required: true},
				{Name: "destination", Type: "string", Description: "Compressed file", Required: true},
			},
			Streaming: true,
		},
		{
			Verb:        "decompress",
			Name:        "Decompress File",
			Description: "Write a decompressed copy; the format is detected from the input",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Compressed file", Required: true},
				{Name: "destination", Type: "string", Description: "Output file", Required: true},
			},
			Streaming: true,
		},
	}
}

// Compress writes a compressed copy of source to destination
func (a *ArchiveOps) Compress(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	from, to := resolvePair(sess, args)

	return a.launch(ctx, "compress", func(ctx context.Context) (tasks.Result, error) {
		if err := a.checkDistinct(from, to); err != nil {
			return tasks.Result{}, err
		}

		src, err := a.FS.OpenRead(from)
		if err != nil {
			return tasks.Result{}, fmt.Errorf("open source %s: %w", from, err)
		}
		defer src.Close()

		dst, err := a.FS.OpenWrite(to)
		if err != nil {
			return tasks.Result{}, fmt.Errorf("open destination %s: %w", to, err)
		}

		n, err := a.Codec.Compress(dst, src, a.Codec.FormatFor(to))
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return tasks.Result{Bytes: n}, fmt.Errorf("compress %s: %w", from, err)
		}
		return tasks.Result{Message: MessageCompressed, Bytes: n}, nil
	})
}

// Decompress writes a decompressed copy of source to destination. The
// destination is only created once the input is recognised.
func (a *ArchiveOps) Decompress(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	from, to := resolvePair(sess, args)

	return a.launch(ctx, "decompress", func(ctx context.Context) (tasks.Result, error) {
		if err := a.checkDistinct(from, to); err != nil {
			return tasks.Result{}, err
		}

		src, err := a.FS.OpenRead(from)
		if err != nil {
			return tasks.Result{}, fmt.Errorf("open source %s: %w", from, err)
		}
		defer src.Close()

		n, err := a.Codec.DecompressTo(func() (io.WriteCloser, error) {
			dst, err := a.FS.OpenWrite(to)
			if err != nil {
				return nil, fmt.Errorf("open destination %s: %w", to, err)
			}
			return dst, nil
		}, src)
		if err != nil {
			return tasks.Result{Bytes: n}, fmt.Errorf("decompress %s: %w", from, err)
		}
		return tasks.Result{Message: MessageDecompressed, Bytes: n}, nil
	})
}
