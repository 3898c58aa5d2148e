package tasks

import (
	"context"
	"time"

	"github.com/GriffinCanCode/filemanager/internal/shared/id"
)

// Result is what a successful task reports
type Result struct {
	Message string
	Bytes   int64
}

// Func performs the work of one streaming operation
type Func func(ctx context.Context) (Result, error)

// Task is the handle of one launched operation
type Task struct {
	id        id.TaskID
	verb      string
	startedAt time.Time
	done      chan struct{}

	result Result
	err    error
}

func newTask(verb string) *Task {
	return &Task{
		id:        id.NewTaskID(),
		verb:      verb,
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// ID returns the task identifier
func (t *Task) ID() string { return t.id.String() }

// Wait blocks until the task has reported and returns its error
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Result returns the outcome of a finished task. It must only be called
// from the Reporter or after Wait has returned without a context error.
func (t *Task) Result() (Result, error) {
	return t.result, t.err
}
