package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "hirely-api"

// SpanContext wraps an OTel span for managed lifecycle.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan creates a child span of whatever is on ctx and copies the
// context LogFields onto it as attributes. With no tracer provider
// installed the span is a no-op.
//
//	sc := logger.StartSpan(ctx, "export.applicants")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	if attrs := fieldAttributes(GetLogFields(ctx)); len(attrs) > 0 {
		opts = append(opts, trace.WithAttributes(attrs...))
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

func fieldAttributes(f LogFields) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if f.PrincipalID != nil {
		attrs = append(attrs, attribute.Int64("hirely.principal.id", *f.PrincipalID))
	}
	if f.PrincipalRole != nil {
		attrs = append(attrs, attribute.String("hirely.principal.role", *f.PrincipalRole))
	}
	if f.JobID != nil {
		attrs = append(attrs, attribute.Int64("hirely.job.id", *f.JobID))
	}
	if f.ConversationID != nil {
		attrs = append(attrs, attribute.Int64("hirely.conversation.id", *f.ConversationID))
	}
	return attrs
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// SetAttributes adds attributes learned after the span started, e.g. a row count.
func (sc *SpanContext) SetAttributes(attrs ...attribute.KeyValue) {
	if sc.span != nil {
		sc.span.SetAttributes(attrs...)
	}
}

// End is safe to call more than once.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

// RecordError records err on the span and marks it failed.
func (sc *SpanContext) RecordError(err error) {
	if sc.span != nil && err != nil {
		sc.span.RecordError(err)
		sc.span.SetStatus(codes.Error, err.Error())
	}
}
