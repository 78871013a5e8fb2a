// Package tracing starts child spans only. Work reached from an untraced
// entry point, such as a filtered health check or the sync CLI without an
// exporter, gets a no-op span instead of a fresh root.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TagKey annotates spans with the player or clan tag they operate on.
const TagKey = attribute.Key("royale.tag")

var noop = trace.SpanFromContext(context.Background())

// Tracer is a named source of child spans.
type Tracer struct {
	t trace.Tracer
}

func New(name string) Tracer {
	return Tracer{t: otel.Tracer(name)}
}

func (t Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noop
	}
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
