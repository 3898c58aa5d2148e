package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

type mockProvider struct {
	id       string
	category types.Category
	verbs    []string
}

func (m *mockProvider) Definition() types.Service {
	ops := make([]types.Operation, len(m.verbs))
	for i, verb := range m.verbs {
		ops[i] = types.Operation{
			Verb: verb,
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Required: true},
			},
			Streaming: verb == "cat",
		}
	}
	return types.Service{
		ID:         m.id,
		Name:       "Mock Service",
		Category:   m.category,
		Operations: ops,
	}
}

func (m *mockProvider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	return types.Success(m.id + ":" + cmd.Verb)
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "fs", category: types.CategoryFilesystem, verbs: []string{"cat", "rm"}}))

	p, op, ok := r.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, "fs", p.Definition().ID)
	assert.Equal(t, 1, op.RequiredArgs())
	assert.True(t, op.Streaming)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "fs", verbs: []string{"ls"}}))

	_, _, ok := r.Lookup("LS")
	assert.False(t, ok)
	_, _, ok = r.Lookup("")
	assert.False(t, ok)
}

func TestRegisterRejectsConflicts(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "fs", verbs: []string{"cp"}}))

	assert.Error(t, r.Register(&mockProvider{id: ""}))
	assert.Error(t, r.Register(&mockProvider{id: "fs"}))
	assert.Error(t, r.Register(&mockProvider{id: "other", verbs: []string{"mv", "cp"}}))

	_, _, ok := r.Lookup("mv")
	assert.False(t, ok, "a rejected registration must not leave partial verbs")
}

func TestVerbsAndStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "fs", category: types.CategoryFilesystem, verbs: []string{"cat", "rm"}}))
	require.NoError(t, r.Register(&mockProvider{id: "nav", category: types.CategoryNavigation, verbs: []string{"cd"}}))

	assert.Equal(t, []string{"cat", "cd", "rm"}, r.Verbs())

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 3, stats["total_verbs"])
	assert.Equal(t, 1, stats["streaming_verbs"])
	assert.Equal(t, map[string]int{"filesystem": 1, "navigation": 1}, stats["categories"])
}
