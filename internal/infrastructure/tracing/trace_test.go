package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestChildSpanSharesTrace(t *testing.T) {
	tracer := New("test", nil)
	defer tracer.Close()

	parent, ctx := tracer.StartSpan(context.Background(), "command.cp")
	child, childCtx := tracer.StartSpan(ctx, "task.cp")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
	assert.Equal(t, child.SpanID, GetSpanID(childCtx))
	assert.Empty(t, parent.ParentID)
}

func TestSubmitLogsSpan(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tracer := New("test", zap.New(core))

	span, _ := tracer.StartSpan(context.Background(), "command.rm")
	span.SetTag("verb", "rm")
	span.SetError(errors.New("no such file"))
	tracer.Submit(span)
	tracer.Close()

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 5*time.Millisecond)

	entry := logs.All()[0]
	assert.Equal(t, "span completed with error", entry.Message)
	assert.Equal(t, "command.rm", entry.ContextMap()["operation"])
	assert.Equal(t, "rm", entry.ContextMap()["tag.verb"])
}

func TestSubmitAfterCloseIsIgnored(t *testing.T) {
	tracer := New("test", nil)
	tracer.Close()

	span, _ := tracer.StartSpan(context.Background(), "late")
	assert.NotPanics(t, func() { tracer.Submit(span) })
	assert.NotPanics(t, tracer.Close)
}

func TestEmptyContext(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}
