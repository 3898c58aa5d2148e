package shell

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/filemanager/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/filemanager/internal/service"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/id"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Dispatcher routes commands to providers and turns every failure into an
// Outcome. It holds no state between commands.
type Dispatcher struct {
	registry *service.Registry
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewDispatcher creates a dispatcher. Metrics and tracer may be nil.
func NewDispatcher(registry *service.Registry, logger *logging.Logger, metrics *monitoring.Metrics, tracer *tracing.Tracer) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// Dispatch runs one command against the session. Unknown verbs and missing
// arguments are rejected before any provider runs.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	start := time.Now()
	log := d.logger.ForCommand(id.NewCommandID().String(), cmd.Verb, cmd.Args)

	var span *tracing.Span
	if d.tracer != nil {
		span, ctx = d.tracer.StartSpan(ctx, "dispatch")
		span.SetTag("verb", cmd.Verb)
	}

	outcome := d.route(ctx, cmd, sess)

	switch outcome.Status {
	case types.StatusInvalidInput:
		log.Debug("Command rejected", zap.String("reason", outcome.Message), zap.Error(outcome.Cause))
	case types.StatusFailed:
		log.Debug("Command failed", zap.Error(outcome.Cause))
	default:
		fields := []zap.Field{zap.String("dir", sess.Current())}
		if outcome.Task != nil {
			fields = append(fields, zap.String("task_id", outcome.Task.ID()))
		}
		log.Debug("Command completed", fields...)
	}

	if span != nil {
		span.SetTag("outcome", outcome.Status.String())
		if outcome.Cause != nil {
			span.SetError(outcome.Cause)
		}
		d.tracer.Submit(span)
	}
	if d.metrics != nil {
		d.metrics.RecordCommand(cmd.Verb, outcome.Status.String(), time.Since(start))
	}

	return outcome
}

func (d *Dispatcher) route(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	provider, op, ok := d.registry.Lookup(cmd.Verb)
	if !ok {
		return types.InvalidInput(fmt.Sprintf("unknown verb: %q", cmd.Verb))
	}
	if required := op.RequiredArgs(); len(cmd.Args) < required {
		return types.InvalidInput(fmt.Sprintf("%s needs %d arguments, got %d", cmd.Verb, required, len(cmd.Args)))
	}
	return execute(ctx, provider, cmd, sess)
}

// execute converts a provider panic into a failed outcome so the loop
// survives it
func execute(ctx context.Context, provider service.Provider, cmd types.Command, sess *session.Session) (outcome types.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			outcome = types.Failed(fmt.Errorf("%s panicked: %v", cmd.Verb, p))
		}
	}()
	return provider.Execute(ctx, cmd, sess)
}
