package filesystem

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

type handler func(ctx context.Context, sess *session.Session, args []string) types.Outcome

// Provider serves every file verb
type Provider struct {
	basic      *BasicOps
	directory  *DirectoryOps
	operations *OperationsOps
	metadata   *MetadataOps
	archives   *ArchiveOps

	handlers map[string]handler
}

// NewProvider creates a filesystem provider. Streamed cat output goes to out.
func NewProvider(fsys FS, launcher Launcher, out io.Writer, hasher *utils.Hasher, codec *Codec) *Provider {
	if hasher == nil {
		hasher = utils.DefaultHasher()
	}
	if codec == nil {
		codec = DefaultCodec()
	}

	ops := &FilesystemOps{FS: fsys, Launcher: launcher, Out: out}
	p := &Provider{
		basic:      &BasicOps{FilesystemOps: ops},
		directory:  &DirectoryOps{FilesystemOps: ops},
		operations: &OperationsOps{FilesystemOps: ops},
		metadata:   &MetadataOps{FilesystemOps: ops, Hasher: hasher},
		archives:   &ArchiveOps{FilesystemOps: ops, Codec: codec},
	}

	p.handlers = map[string]handler{
		"add":        p.basic.Add,
		"rm":         p.basic.Remove,
		"cat":        p.basic.Cat,
		"ls":         p.directory.List,
		"mkdir":      p.directory.Mkdir,
		"rn":         p.operations.Rename,
		"cp":         p.operations.Copy,
		"mv":         p.operations.Move,
		"hash":       p.metadata.Hash,
		"compress":   p.archives.Compress,
		"decompress": p.archives.Decompress,
	}

	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var ops []types.Operation
	ops = append(ops, p.basic.GetOperations()...)
	ops = append(ops, p.directory.GetOperations()...)
	ops = append(ops, p.operations.GetOperations()...)
	ops = append(ops, p.metadata.GetOperations()...)
	ops = append(ops, p.archives.GetOperations()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "File and directory operations relative to the current directory",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"create",
			"read",
			"rename",
			"copy",
			"move",
			"delete",
			"hash",
			"compress",
		},
		Operations: ops,
	}
}

// Execute runs a file verb. Argument counts are checked by the dispatcher
// against each Operation before a handler runs.
func (p *Provider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	h, ok := p.handlers[cmd.Verb]
	if !ok {
		return types.InvalidInput(fmt.Sprintf("unknown verb: %s", cmd.Verb))
	}
	return h(ctx, sess, cmd.Args)
}
