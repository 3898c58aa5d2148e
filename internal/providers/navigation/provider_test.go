package navigation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

type osStat struct{}

func (osStat) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

func exec(p *Provider, sess *session.Session, verb string, args ...string) types.Outcome {
	return p.Execute(context.Background(), types.Command{Verb: verb, Args: args}, sess)
}

func TestCdThenUpRestores(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	sess := session.New(root, "", osStat{})
	p := NewProvider()

	for _, target := range []string{"a", "a/b", filepath.Join(root, "a")} {
		start := sess.Current()
		require.Equal(t, types.StatusSuccess, exec(p, sess, "cd", target).Status, target)
		require.Equal(t, types.StatusSuccess, exec(p, sess, "up").Status)
		if target == "a/b" {
			require.Equal(t, types.StatusSuccess, exec(p, sess, "up").Status)
		}
		assert.Equal(t, start, sess.Current(), target)
	}
}

func TestCdRejectsFilesAndMissing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), nil, 0o644))
	sess := session.New(root, "", osStat{})
	p := NewProvider()

	tests := []struct {
		target string
		reason string
		cause  error
	}{
		{"f.txt", "not a directory", session.ErrNotDirectory},
		{"nope", "no such directory", fs.ErrNotExist},
	}

	for _, tt := range tests {
		outcome := exec(p, sess, "cd", tt.target)
		assert.Equal(t, types.StatusInvalidInput, outcome.Status, tt.target)
		assert.Equal(t, tt.reason, outcome.Message, tt.target)
		assert.ErrorIs(t, outcome.Cause, tt.cause, tt.target)
		assert.Equal(t, types.MessageInvalidInput, outcome.Display())
	}
	assert.Equal(t, root, sess.Current())
}

func TestUpAtRoot(t *testing.T) {
	sess := session.New(string(filepath.Separator), "", osStat{})

	assert.Equal(t, types.StatusSuccess, exec(NewProvider(), sess, "up").Status)
	assert.Equal(t, string(filepath.Separator), sess.Current())
}
