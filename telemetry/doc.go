// Package telemetry connects search engines to logs, metrics and traces.
//
// Every type here implements astar.Observer and is installed with
// astar.WithObserver. Observers receive an astar.Summary once per finished
// search; they never see nodes, so one observer serves engines of any node
// type.
//
//   - LogObserver writes one slog record per search.
//   - PrometheusObserver feeds counters and histograms under the "wayfind"
//     namespace.
//   - TracingObserver emits one OpenTelemetry span per search, back-dated to
//     the search start.
//   - Multi fans a summary out to several observers.
//
// NewLogger builds the text or JSON slog.Logger used by the CLI.
package telemetry
