package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// MetadataOps handles hash
type MetadataOps struct {
	*FilesystemOps
	Hasher *utils.Hasher
}

// GetOperations returns metadata operation definitions
func (m *MetadataOps) GetOperations() []types.Operation {
	return []types.Operation{
		{
			Verb:        "hash",
			Name:        "Hash File",
			Description: fmt.Sprintf("Print the %s digest of a file in hex", m.Hasher.Algorithm()),
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Streaming: true,
		},
	}
}

// Hash streams a file through the digest and reports the hex value
func (m *MetadataOps) Hash(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	path := sess.Resolve(args[0])

	return m.launch(ctx, "hash", func(ctx context.Context) (tasks.Result, error) {
		src, err := m.FS.OpenRead(path)
		if err != nil {
			return tasks.Result{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer src.Close()

		digest, n, err := m.Hasher.HashReader(src)
		if err != nil {
			return tasks.Result{Bytes: n}, fmt.Errorf("hash %s: %w", path, err)
		}
		return tasks.Result{Message: digest, Bytes: n}, nil
	})
}
