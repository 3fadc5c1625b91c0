package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

var usecaseTracer = otel.Tracer("pool-league/internal/usecase")

// startUsecaseSpan only opens child spans; calls without a traced parent get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func modeAttr(mode scoring.Mode) attribute.KeyValue {
	return attribute.String("league.mode", string(mode))
}

func tournamentAttr(id int64) attribute.KeyValue {
	return attribute.Int64("league.tournament_id", id)
}

func leagueAttr(id int64) attribute.KeyValue {
	return attribute.Int64("fantasy.league_id", id)
}

func queryAttrs(q StatsQuery) []attribute.KeyValue {
	attrs := []attribute.KeyValue{modeAttr(q.Mode)}
	if q.SeasonID != nil {
		attrs = append(attrs, attribute.Int64("league.season_id", *q.SeasonID))
	}
	return attrs
}
