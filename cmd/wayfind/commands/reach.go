package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/dijkstra"
)

var maxDistance float64

type reachOutput struct {
	From      [2]int  `json:"from"`
	Budget    float64 `json:"budget,omitempty"`
	Reachable int     `json:"reachable"`
	Farthest  float64 `json:"farthest"`
}

var reachCmd = &cobra.Command{
	Use:   "reach",
	Short: "Count cells reachable from the start within a cost budget",
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

		opts := []dijkstra.Option{dijkstra.WithCapacityHint(plan.Grid.Width * plan.Grid.Height)}
		if maxDistance > 0 {
			opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
		}
		tree, err := dijkstra.Distances(cmd.Context(), plan.Start, plan.Grid.EachNeighbor, plan.Grid.Cost, opts...)
		if err != nil {
			return err
		}

		out := reachOutput{From: [2]int{plan.Start.X, plan.Start.Y}, Budget: maxDistance, Reachable: len(tree.Dist)}
		for _, d := range tree.Dist {
			out.Farthest = math.Max(out.Farthest, d)
		}
		logger.Debug("reach computed", "cells", out.Reachable, "farthest", out.Farthest)

		w := cmd.OutOrStdout()
		if outputJSON {
			return writeJSON(w, out)
		}
		fmt.Fprintf(w, "reachable: %d  farthest: %g\n", out.Reachable, out.Farthest)

		return nil
	},
}

func init() {
	reachCmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "cost budget (0 = unlimited)")
}
