package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("pool-league/internal/interfaces/httpapi")

// startSpan opens a handler span under the otelhttp server span. Untraced requests
// (health checks, /metrics) and non-handler names get a no-op span.
func startSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, trace.SpanFromContext(context.Background())
	}

	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if r.Pattern != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("http.route", r.Pattern)))
	}
	return apiTracer.Start(ctx, name, opts...)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
