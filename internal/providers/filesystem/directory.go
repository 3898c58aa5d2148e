package filesystem

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GriffinCanCode/filemanager/internal/console"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Entry kinds shown by ls
const (
	KindDirectory = "directory"
	KindFile      = "file"
)

// Entry is one row of a directory listing
type Entry struct {
	Name string
	Type string
}

// DirectoryOps handles ls and mkdir
type DirectoryOps struct {
	*FilesystemOps
}

// GetOperations returns directory operation definitions
func (d *DirectoryOps) GetOperations() []types.Operation {
	return []types.Operation{
		{
			Verb:        "ls",
			Name:        "List Directory",
			Description: "List the current directory, directories first",
		},
		{
			Verb:        "mkdir",
			Name:        "Create Directory",
			Description: "Create a directory and any missing parents",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
		},
	}
}

// List renders the current directory as a table
func (d *DirectoryOps) List(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	dir := sess.Current()

	names, err := d.FS.ReadDir(dir)
	if err != nil {
		return types.Failed(fmt.Errorf("read directory %s: %w", dir, err))
	}

	entries := ClassifyEntries(names)
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Name, entry.Type}
	}
	return types.Success(console.RenderTable([]string{"Name", "Type"}, rows))
}

// Mkdir creates a directory, succeeding if it already exists
func (d *DirectoryOps) Mkdir(ctx context.Context, sess *session.Session, args []string) types.Outcome {
	path := sess.Resolve(args[0])

	if err := d.FS.MkdirAll(path); err != nil {
		return types.Failed(fmt.Errorf("mkdir %s: %w", path, err))
	}
	return types.Success("")
}

// ClassifyEntries types each name by whether it contains a dot, then orders
// them by name and, dominantly, by type. The classification never looks at
// the disk, so a directory named "archive.old" lists as a file.
func ClassifyEntries(names []string) []Entry {
	entries := make([]Entry, len(names))
	for i, name := range names {
		kind := KindDirectory
		if strings.Contains(name, ".") {
			kind = KindFile
		}
		entries[i] = Entry{Name: name, Type: kind}
	}

	collator := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		return collator.CompareString(entries[i].Name, entries[j].Name) < 0
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Type < entries[j].Type
	})
	return entries
}
