package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/filemanager/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/filemanager/internal/shared/id"
)

// Reporter is called exactly once per task, after its result is recorded and
// before Wait returns
type Reporter func(task *Task)

// Runner launches tasks and tracks the ones still in flight
type Runner struct {
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	reporter Reporter

	wg     sync.WaitGroup
	mu     sync.Mutex
	active map[id.TaskID]*Task
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithMetrics sets the metrics collector
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(r *Runner) { r.metrics = metrics }
}

// WithTracer sets the tracer
func WithTracer(tracer *tracing.Tracer) Option {
	return func(r *Runner) { r.tracer = tracer }
}

// WithReporter sets the completion callback
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) { r.reporter = reporter }
}

// NewRunner creates a runner
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: logging.NewNop(),
		active: make(map[id.TaskID]*Task),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Launch starts fn in its own goroutine. The task outlives ctx's
// cancellation but keeps its values, so spans nest under the command.
func (r *Runner) Launch(ctx context.Context, verb string, fn Func) *Task {
	task := newTask(verb)

	r.mu.Lock()
	r.active[task.id] = task
	r.mu.Unlock()

	r.wg.Add(1)
	if r.metrics != nil {
		r.metrics.TaskStarted()
	}

	r.logger.Debug("Task launched",
		zap.String("task_id", task.ID()),
		zap.String("verb", verb),
	)

	go r.run(context.WithoutCancel(ctx), task, fn)
	return task
}

func (r *Runner) run(ctx context.Context, task *Task, fn Func) {
	defer r.wg.Done()

	var span *tracing.Span
	if r.tracer != nil {
		span, ctx = r.tracer.StartSpan(ctx, "task."+task.verb)
		span.SetTag("task_id", task.ID())
	}

	result, err := invoke(ctx, fn)
	task.result, task.err = result, err

	if span != nil {
		if err != nil {
			span.SetError(err)
		}
		r.tracer.Submit(span)
	}

	if r.metrics != nil {
		r.metrics.TaskFinished(task.verb, result.Bytes, err)
	}

	fields := []zap.Field{
		zap.String("task_id", task.ID()),
		zap.String("verb", task.verb),
		zap.Int64("bytes", result.Bytes),
		zap.Duration("duration", time.Since(task.startedAt)),
	}
	if err != nil {
		r.logger.Warn("Task failed", append(fields, zap.Error(err))...)
	} else {
		r.logger.Debug("Task completed", fields...)
	}

	if r.reporter != nil {
		r.reporter(task)
	}

	r.mu.Lock()
	delete(r.active, task.id)
	r.mu.Unlock()

	close(task.done)
}

// invoke runs fn, converting a panic into an error so one broken stream
// cannot take the session down
func invoke(ctx context.Context, fn Func) (result Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return fn(ctx)
}

// Active returns the number of tasks still running
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Wait blocks until every launched task has reported
func (r *Runner) Wait() {
	r.wg.Wait()
}
