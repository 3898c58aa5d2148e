/*
Package tracing records lightweight spans for dispatched commands and the
streaming tasks they launch.

Spans follow OpenTelemetry concepts (trace ID, span ID, parent) but are
emitted as structured debug log lines through zap rather than exported. A
streaming task's span is a child of the command span that launched it, so a
late completion can be tied back to the input line that caused it even when
the console has moved on.

# Usage

	tracer := tracing.New("filemanager", logger)
	defer tracer.Close()

	span, ctx := tracer.StartSpan(ctx, "command.cp")
	span.SetTag("verb", "cp")
	defer tracer.Submit(span)
*/
package tracing
