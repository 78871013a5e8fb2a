package httpapi

import (
	"context"
	"strings"

	"github.com/riskibarqy/royale-stats/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = tracing.New("royale-stats/internal/interfaces/httpapi")

// startSpan only opens spans for handlers; middleware names are accepted so
// call sites stay uniform, but otelhttp already covers them.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !isHandlerSpan(name) {
		name = ""
	}
	return apiTracer.Start(ctx, name)
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
