package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filemanager/internal/console"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/providers/navigation"
	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"github.com/GriffinCanCode/filemanager/internal/service"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/testutil"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// countingFS records how many filesystem calls were made
type countingFS struct {
	filesystem.OSFS
	calls atomic.Int64
}

func (c *countingFS) Stat(path string) (os.FileInfo, error) {
	c.calls.Add(1)
	return c.OSFS.Stat(path)
}

func (c *countingFS) ReadDir(path string) ([]string, error) {
	c.calls.Add(1)
	return c.OSFS.ReadDir(path)
}

func (c *countingFS) CreateFile(path string, exclusive bool) error {
	c.calls.Add(1)
	return c.OSFS.CreateFile(path, exclusive)
}

func (c *countingFS) OpenRead(path string) (io.ReadCloser, error) {
	c.calls.Add(1)
	return c.OSFS.OpenRead(path)
}

func (c *countingFS) OpenWrite(path string) (io.WriteCloser, error) {
	c.calls.Add(1)
	return c.OSFS.OpenWrite(path)
}

func (c *countingFS) Remove(path string) error {
	c.calls.Add(1)
	return c.OSFS.Remove(path)
}

type harness struct {
	root       string
	fs         *countingFS
	out        *bytes.Buffer
	console    *console.Console
	session    *session.Session
	registry   *service.Registry
	dispatcher *Dispatcher
	runner     *tasks.Runner
	metrics    *monitoring.Metrics
}

func newHarness(t *testing.T, name string) *harness {
	t.Helper()
	h := &harness{
		root:     t.TempDir(),
		fs:       &countingFS{},
		out:      &bytes.Buffer{},
		registry: service.NewRegistry(),
		metrics:  monitoring.NewMetrics(),
	}
	h.console = console.New(h.out)
	h.session = session.New(h.root, name, h.fs)
	h.runner = tasks.NewRunner(tasks.WithReporter(TaskReporter(h.console)), tasks.WithMetrics(h.metrics))

	require.NoError(t, h.registry.Register(navigation.NewProvider()))
	require.NoError(t, h.registry.Register(filesystem.NewProvider(h.fs, h.runner, h.console, nil, nil)))
	require.NoError(t, h.registry.Register(system.NewProvider(nil)))

	h.dispatcher = NewDispatcher(h.registry, nil, h.metrics, nil)
	return h
}

func (h *harness) shell(input string) *Shell {
	return New(strings.NewReader(input), h.console, h.session, h.dispatcher, h.runner, nil)
}

func (h *harness) lines() []string {
	return strings.Split(strings.TrimSuffix(h.out.String(), "\n"), "\n")
}

func (h *harness) dispatch(line string) types.Outcome {
	return h.dispatcher.Dispatch(context.Background(), Parse(line), h.session)
}

func TestUnknownVerbNeverTouchesFilesystem(t *testing.T) {
	h := newHarness(t, "")

	for _, line := range []string{"frobnicate a.txt", "", "LS", "Cat x"} {
		outcome := h.dispatch(line)
		assert.Equal(t, types.StatusInvalidInput, outcome.Status, line)
		assert.Equal(t, types.MessageInvalidInput, outcome.Display())
	}
	assert.Zero(t, h.fs.calls.Load())
}

func TestMissingArgumentsNeverTouchFilesystem(t *testing.T) {
	h := newHarness(t, "")

	for _, line := range []string{"cd", "add", "cat", "rn a", "cp a", "mv a", "rm", "hash", "os", "compress a", "decompress a", "mkdir"} {
		assert.Equal(t, types.StatusInvalidInput, h.dispatch(line).Status, line)
	}
	assert.Zero(t, h.fs.calls.Load())
}

func TestExtraArgumentsAreIgnored(t *testing.T) {
	h := newHarness(t, "")

	assert.Equal(t, types.StatusSuccess, h.dispatch("add a.txt b.txt").Status)
	assert.FileExists(t, filepath.Join(h.root, "a.txt"))
	assert.NoFileExists(t, filepath.Join(h.root, "b.txt"))
}

type panickingProvider struct{}

func (panickingProvider) Definition() types.Service {
	return types.Service{ID: "broken", Operations: []types.Operation{{Verb: "explode"}}}
}

func (panickingProvider) Execute(context.Context, types.Command, *session.Session) types.Outcome {
	panic("boom")
}

func TestDispatchRecoversFromPanics(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.registry.Register(panickingProvider{}))

	outcome := h.dispatch("explode")
	assert.Equal(t, types.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Cause.Error(), "boom")
}

func TestDispatchRecordsMetrics(t *testing.T) {
	h := newHarness(t, "")

	h.dispatch("ls")
	h.dispatch("rm missing.txt")
	h.dispatch("nope")

	assert.Equal(t, float64(1), promtest.ToFloat64(h.metrics.CommandsTotal.WithLabelValues("ls", "success")))
	assert.Equal(t, float64(1), promtest.ToFloat64(h.metrics.CommandsTotal.WithLabelValues("rm", "failed")))
	assert.Equal(t, float64(1), promtest.ToFloat64(h.metrics.CommandsTotal.WithLabelValues("nope", "invalid_input")))
}

func TestExecutePrintsLocationAfterEveryCommand(t *testing.T) {
	h := newHarness(t, "")
	s := h.shell("")
	footer := "You are currently in " + h.root

	s.Execute(context.Background(), "nope")
	s.Execute(context.Background(), "rm missing.txt")
	s.Execute(context.Background(), "mkdir docs")

	assert.Equal(t, []string{
		"Invalid input", footer,
		"Operation failed", footer,
		footer,
	}, h.lines())
}

func TestRunSession(t *testing.T) {
	h := newHarness(t, "Alice")
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "docs"), 0o755))

	err := h.shell("cd docs\nup\ncd missing\nadd notes.txt\nadd notes.txt\n").Run(context.Background())
	require.NoError(t, err)

	root := "You are currently in " + h.root
	docs := "You are currently in " + filepath.Join(h.root, "docs")
	assert.Equal(t, []string{
		"Welcome to the File Manager, Alice!",
		root,
		Prompt,
		docs,
		Prompt,
		root,
		Prompt,
		"Invalid input",
		root,
		Prompt,
		root,
		Prompt,
		"Operation failed",
		root,
		Prompt,
		"Thank you for using File Manager, Alice, goodbye!",
	}, h.lines())
}

func TestRunWaitsForStreamingTasks(t *testing.T) {
	h := newHarness(t, "")
	payload := strings.Repeat("streamed ", 10000)
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "src.txt"), []byte(payload), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "dest"), 0o755))

	input := strings.Join([]string{
		"cp src.txt copy.txt",
		"compress src.txt src.zst",
		"hash src.txt",
		"cat missing.txt",
	}, "\n")
	require.NoError(t, h.shell(input).Run(context.Background()))

	lines := h.lines()
	assert.Equal(t, "Thank you for using File Manager, goodbye!", lines[len(lines)-1])
	assert.Contains(t, lines, "File copied successfully")
	assert.Contains(t, lines, "File compressed successfully")
	assert.Contains(t, lines, "Operation failed")

	data, err := os.ReadFile(filepath.Join(h.root, "copy.txt"))
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
	assert.Zero(t, h.runner.Active())
}

func TestRunMoveThenDecompress(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "a.txt"), []byte("round trip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "dest"), 0o755))

	s := h.shell("")
	ctx := context.Background()

	outcome := s.Execute(ctx, "mv a.txt dest")
	require.NotNil(t, outcome.Task)
	require.NoError(t, outcome.Task.Wait(ctx))
	assert.NoFileExists(t, filepath.Join(h.root, "a.txt"))

	outcome = s.Execute(ctx, "compress dest/a.txt a.gz")
	require.NoError(t, outcome.Task.Wait(ctx))
	outcome = s.Execute(ctx, "decompress a.gz restored.txt")
	require.NoError(t, outcome.Task.Wait(ctx))

	data, err := os.ReadFile(filepath.Join(h.root, "restored.txt"))
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(data))
	assert.Contains(t, h.lines(), "File moved successfully")
	assert.Contains(t, h.lines(), "File decompressed successfully")
}

func TestRunStopsWhenCancelled(t *testing.T) {
	h := newHarness(t, "")
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(reader, h.console, h.session, h.dispatcher, h.runner, nil).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop after cancellation")
	}

	lines := h.lines()
	assert.Equal(t, "Thank you for using File Manager, goodbye!", lines[len(lines)-1])
}

func TestRunReportsOSFacts(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.shell("os --EOL\nos --bogus\n").Run(context.Background()))

	lines := h.lines()
	assert.Contains(t, lines, `"\n"`)
	assert.Contains(t, lines, "Invalid input")
}

func TestDispatchChecksContractBeforeProvider(t *testing.T) {
	h := newHarness(t, "")
	provider := testutil.NewMockServiceProvider("mock", 2, "pair")
	provider.On("Execute", mock.Anything, types.Command{Verb: "pair", Args: []string{"a", "b", "c"}}, h.session).
		Return(types.Success("paired")).Once()
	require.NoError(t, h.registry.Register(provider))

	assert.Equal(t, types.StatusInvalidInput, h.dispatch("pair a").Status)
	assert.Equal(t, "paired", h.dispatch("pair a b c").Message)

	provider.AssertExpectations(t)
	provider.AssertNumberOfCalls(t, "Execute", 1)
}

func TestWriteTreeFixturesWithLs(t *testing.T) {
	h := newHarness(t, "")
	testutil.WriteTree(t, h.root, map[string]string{
		"b.txt": "",
		"a.txt": "",
		"A/":    "",
	})

	outcome := h.dispatch("ls")
	require.Equal(t, types.StatusSuccess, outcome.Status)
	lines := strings.Split(outcome.Message, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[3], "'A'")
	assert.Contains(t, lines[4], "'a.txt'")
	assert.Contains(t, lines[5], "'b.txt'")
}
