// Package testutil provides testing utilities and helpers for file manager tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
	service types.Service
}

// NewMockServiceProvider creates a mock serving the given verbs, each
// requiring args arguments.
func NewMockServiceProvider(id string, args int, verbs ...string) *MockServiceProvider {
	params := make([]types.Parameter, args)
	for i := range params {
		params[i] = types.Parameter{Name: "arg", Type: "string", Required: true}
	}
	ops := make([]types.Operation, len(verbs))
	for i, verb := range verbs {
		ops[i] = types.Operation{Verb: verb, Parameters: params}
	}
	return &MockServiceProvider{service: types.Service{ID: id, Operations: ops}}
}

// Definition returns the static definition.
func (m *MockServiceProvider) Definition() types.Service {
	return m.service
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	args := m.Called(ctx, cmd, sess)
	return args.Get(0).(types.Outcome)
}

// WriteTree creates files under root. Keys ending in "/" are created as
// directories.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// ReadFile returns the contents of root/name.
func ReadFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}
