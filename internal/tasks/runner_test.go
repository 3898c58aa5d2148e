package tasks

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/shared/id"
)

type report struct {
	verb    string
	message string
	err     error
}

type recorder struct {
	mu      sync.Mutex
	reports []report
}

func (r *recorder) record(task *Task) {
	result, err := task.Result()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report{task.verb, result.Message, err})
}

func (r *recorder) all() []report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]report(nil), r.reports...)
}

func TestLaunchReportsBeforeDone(t *testing.T) {
	rec := &recorder{}
	runner := NewRunner(WithReporter(rec.record))

	task := runner.Launch(context.Background(), "cp", func(context.Context) (Result, error) {
		return Result{Message: "File copied successfully", Bytes: 42}, nil
	})

	require.NoError(t, task.Wait(context.Background()))
	assert.Equal(t, []report{{"cp", "File copied successfully", nil}}, rec.all())
	assert.True(t, strings.HasPrefix(task.ID(), id.TaskPrefix+"_"), task.ID())

	result, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Bytes)
}

func TestLaunchReportsFailure(t *testing.T) {
	rec := &recorder{}
	runner := NewRunner(WithReporter(rec.record))
	boom := errors.New("no such file")

	task := runner.Launch(context.Background(), "cat", func(context.Context) (Result, error) {
		return Result{}, boom
	})

	assert.ErrorIs(t, task.Wait(context.Background()), boom)
	reports := rec.all()
	require.Len(t, reports, 1)
	assert.ErrorIs(t, reports[0].err, boom)
}

func TestLaunchRecoversPanics(t *testing.T) {
	runner := NewRunner()

	task := runner.Launch(context.Background(), "hash", func(context.Context) (Result, error) {
		panic("stream exploded")
	})

	err := task.Wait(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream exploded")
}

func TestLaunchSurvivesCommandCancellation(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})

	task := runner.Launch(ctx, "mv", func(ctx context.Context) (Result, error) {
		<-release
		return Result{}, ctx.Err()
	})
	cancel()
	close(release)

	assert.NoError(t, task.Wait(context.Background()))
}

func TestWaitDrainsAllTasks(t *testing.T) {
	rec := &recorder{}
	runner := NewRunner(WithReporter(rec.record))
	release := make(chan struct{})

	for i := 0; i < 5; i++ {
		runner.Launch(context.Background(), "compress", func(context.Context) (Result, error) {
			<-release
			return Result{Message: "File compressed successfully"}, nil
		})
	}
	assert.Equal(t, 5, runner.Active())

	close(release)
	runner.Wait()

	assert.Len(t, rec.all(), 5)
	assert.Equal(t, 0, runner.Active())
}

func TestTaskWaitHonorsContext(t *testing.T) {
	runner := NewRunner()
	release := make(chan struct{})
	defer close(release)

	task := runner.Launch(context.Background(), "cat", func(context.Context) (Result, error) {
		<-release
		return Result{}, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, task.Wait(ctx), context.DeadlineExceeded)
}

func TestRunnerRecordsMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	runner := NewRunner(WithMetrics(metrics))

	ok := runner.Launch(context.Background(), "cp", func(context.Context) (Result, error) {
		return Result{Bytes: 10}, nil
	})
	bad := runner.Launch(context.Background(), "cp", func(context.Context) (Result, error) {
		return Result{}, errors.New("denied")
	})
	runner.Wait()
	_ = ok.Wait(context.Background())
	_ = bad.Wait(context.Background())

	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.TasksInFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("cp", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("cp", "failed")))
	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.TaskBytes.WithLabelValues("cp")))
}
