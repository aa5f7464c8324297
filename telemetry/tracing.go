package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wayfind/astar"
)

// SpanName is the name of the span emitted per search.
const SpanName = "wayfind.search"

// TracingObserver turns each search into an OpenTelemetry span. The span is
// created after the search ends but carries its real start and end times.
// A search that ends without a path is still a successful search: its span
// is Ok and the outcome lives in the wayfind.found and wayfind.stop attributes.
type TracingObserver struct {
	tracer trace.Tracer
}

// NewTracingObserver returns a TracingObserver. A nil tracer uses the global
// provider's "wayfind" tracer.
func NewTracingObserver(tracer trace.Tracer) *TracingObserver {
	if tracer == nil {
		tracer = otel.Tracer("github.com/katalvlaran/wayfind")
	}

	return &TracingObserver{tracer: tracer}
}

// ObserveSearch implements astar.Observer.
func (o *TracingObserver) ObserveSearch(ctx context.Context, s astar.Summary) {
	_, span := o.tracer.Start(ctx, SpanName,
		trace.WithTimestamp(s.Started),
		trace.WithAttributes(
			attribute.Bool("wayfind.found", s.Found),
			attribute.Float64("wayfind.cost", s.TotalCost),
			attribute.Int("wayfind.path_len", s.PathLen),
			attribute.Int("wayfind.nodes_considered", s.NodesConsidered),
			attribute.Int("wayfind.expanded", s.Expanded),
			attribute.Int("wayfind.iterations", s.Iterations),
			attribute.Int("wayfind.high_water", s.HighWaterMark),
			attribute.String("wayfind.stop", s.Stop.String()),
			attribute.String("wayfind.strategy", s.Strategy.String()),
		),
	)
	span.SetStatus(codes.Ok, "")
	span.End(trace.WithTimestamp(s.Started.Add(s.Elapsed)))
}
