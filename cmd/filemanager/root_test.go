package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())
	assert.Equal(t, "filemanager dev (unknown)\n", out.String())
}

func TestRootPassesNameArgument(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FM_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("up\n"))
	rootCmd.SetArgs([]string{"--username=carol"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())
	assert.True(t, strings.HasPrefix(out.String(), "Welcome to the File Manager, Carol!\n"))
	assert.True(t, strings.HasSuffix(out.String(), "Thank you for using File Manager, Carol, goodbye!\n"))
}
