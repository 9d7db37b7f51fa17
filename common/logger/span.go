package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "helpdesk"

// SpanContext wraps an OTel span for managed lifecycle.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan creates a new span as a child of the current trace context.
//
//	sc := logger.StartSpan(ctx, "oracle.select_expert")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

// StartSpanFromTraceID starts a span linked to a trace that crossed a process
// boundary (the task stream). An empty or malformed trace ID starts a fresh trace.
func StartSpanFromTraceID(ctx context.Context, traceIDStr string, name string, opts ...trace.SpanStartOption) *SpanContext {
	traceID, err := trace.TraceIDFromHex(traceIDStr)
	if traceIDStr == "" || err != nil {
		return StartSpan(ctx, name, opts...)
	}

	remote := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})

	opts = append(opts, trace.WithLinks(trace.Link{SpanContext: remote}))
	ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
	return StartSpan(ctx, name, opts...)
}

// TraceID returns the hex trace ID of the span in ctx, or "" if there is none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// End completes the span. Safe to call multiple times.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

func (sc *SpanContext) RecordError(err error) {
	if sc.span != nil && err != nil {
		sc.span.RecordError(err)
	}
}
