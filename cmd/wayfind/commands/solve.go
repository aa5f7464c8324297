package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/gridgraph"
	"github.com/katalvlaran/wayfind/pq"
	"github.com/katalvlaran/wayfind/telemetry"
)

var showMetrics bool

type solveOutput struct {
	RunID      string    `json:"run_id"`
	Name       string    `json:"name,omitempty"`
	Found      bool      `json:"found"`
	Cost       float64   `json:"cost"`
	Path       [][2]int  `json:"path"`
	StepCost   []float64 `json:"step_cost,omitempty"`
	Considered [][2]int  `json:"considered,omitempty"`
	Stop       string    `json:"stop"`
	Stats      stats     `json:"stats"`
}

type stats struct {
	NodesConsidered int    `json:"nodes_considered"`
	Expanded        int    `json:"expanded"`
	Iterations      int    `json:"iterations"`
	HighWaterMark   int    `json:"high_water_mark"`
	Elapsed         string `json:"elapsed"`
	Strategy        string `json:"strategy"`
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the cheapest path between start and goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario()
		if err != nil {
			return err
		}
		plan, err := sc.Build()
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		runLog := logger.With("run_id", runID, "scenario", plan.Name)

		reg := prometheus.NewRegistry()
		opts := []astar.Option{
			astar.WithLogger(runLog),
			astar.WithObserver(telemetry.Multi(
				telemetry.NewLogObserver(runLog),
				telemetry.NewPrometheusObserver(reg),
			)),
		}
		if strategy != "" {
			s, err := pq.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			opts = append(opts, astar.WithQueueStrategy(s))
		}

		res, err := plan.Solve(cmd.Context(), opts...)
		if err != nil {
			return err
		}

		out := solveOutput{
			RunID:      runID,
			Name:       plan.Name,
			Found:      res.Found,
			Cost:       res.TotalCost,
			Path:       points(res.Path),
			StepCost:   res.Debug.StepCost,
			Considered: points(res.Debug.Considered),
			Stop:       res.Debug.Stop.String(),
			Stats: stats{
				NodesConsidered: res.Debug.NodesConsidered,
				Expanded:        res.Debug.Expanded,
				Iterations:      res.Debug.Iterations,
				HighWaterMark:   res.Debug.HighWaterMark,
				Elapsed:         res.Debug.Elapsed.String(),
				Strategy:        effectiveStrategy(plan.Strategy),
			},
		}
		w := cmd.OutOrStdout()
		if outputJSON {
			if err := writeJSON(w, out); err != nil {
				return err
			}
		} else {
			printSolve(w, res, out)
		}

		if showMetrics {
			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
					return err
				}
			}
		}

		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print search metrics in Prometheus text format")
}

func effectiveStrategy(fromScenario pq.Strategy) string {
	if strategy != "" {
		return strategy
	}

	return fromScenario.String()
}

func printSolve(w io.Writer, res astar.Result[gridgraph.Cell], out solveOutput) {
	if out.Name != "" {
		fmt.Fprintf(w, "scenario: %s\n", out.Name)
	}
	if !res.Found {
		fmt.Fprintf(w, "no path (%s)\n", out.Stop)
	} else {
		cells := make([]string, len(res.Path))
		for i, c := range res.Path {
			cells[i] = c.String()
		}
		fmt.Fprintf(w, "cost: %g\n", out.Cost)
		fmt.Fprintf(w, "path: %s\n", strings.Join(cells, " "))
	}
	fmt.Fprintf(w, "considered: %d  expanded: %d  iterations: %d  high-water: %d  elapsed: %s  strategy: %s\n",
		out.Stats.NodesConsidered, out.Stats.Expanded, out.Stats.Iterations,
		out.Stats.HighWaterMark, out.Stats.Elapsed, out.Stats.Strategy)
}
