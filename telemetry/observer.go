package telemetry

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/wayfind/astar"
)

// Multi returns an Observer that forwards every summary to each non-nil
// observer in order.
func Multi(observers ...astar.Observer) astar.Observer {
	list := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}

	return list
}

type multi []astar.Observer

func (m multi) ObserveSearch(ctx context.Context, s astar.Summary) {
	for _, o := range m {
		o.ObserveSearch(ctx, s)
	}
}

// LogObserver logs every search at Info. "no path" is a normal outcome and
// never logged as a warning.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns a LogObserver. A nil logger uses slog.Default().
func NewLogObserver(l *slog.Logger) *LogObserver {
	if l == nil {
		l = slog.Default()
	}

	return &LogObserver{logger: l}
}

// ObserveSearch implements astar.Observer.
func (o *LogObserver) ObserveSearch(ctx context.Context, s astar.Summary) {
	msg := "path found"
	if !s.Found {
		msg = "no path"
	}

	o.logger.LogAttrs(ctx, slog.LevelInfo, msg,
		slog.String("stop", s.Stop.String()),
		slog.Float64("cost", s.TotalCost),
		slog.Int("path_len", s.PathLen),
		slog.Int("considered", s.NodesConsidered),
		slog.Int("expanded", s.Expanded),
		slog.Int("high_water", s.HighWaterMark),
		slog.Duration("elapsed", s.Elapsed),
	)
}
