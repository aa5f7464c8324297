package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/gridgraph"
)

type componentsOutput struct {
	Count      int   `json:"count"`
	Sizes      []int `json:"sizes"`
	StartIn    int   `json:"start_component"`
	GoalIn     int   `json:"goal_component"`
	Reachable  bool  `json:"reachable"`
	HasTargets bool  `json:"-"`
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List connected walkable regions of the grid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario()
		if err != nil {
			return err
		}
		gg, err := sc.GridGraph()
		if err != nil {
			return err
		}

		comps := gg.ConnectedComponents()
		out := componentsOutput{Count: len(comps), Sizes: make([]int, len(comps)), StartIn: -1, GoalIn: -1}
		owner := make(map[gridgraph.Cell]int)
		for i, comp := range comps {
			out.Sizes[i] = len(comp)
			for _, idx := range comp {
				x, y := gg.Coordinate(idx)
				owner[gg.MustCell(x, y)] = i
			}
		}
		if plan, err := sc.Build(); err != nil {
			logger.Debug("start/goal not placed", "err", err)
		} else {
			out.HasTargets = true
			out.StartIn = owner[plan.Start]
			out.GoalIn = owner[plan.Goal]
			out.Reachable = out.StartIn == out.GoalIn
		}

		w := cmd.OutOrStdout()
		if outputJSON {
			return writeJSON(w, out)
		}

		fmt.Fprintf(w, "components: %d\n", out.Count)
		for i, n := range out.Sizes {
			fmt.Fprintf(w, "  #%d: %d cells\n", i, n)
		}
		if out.HasTargets {
			fmt.Fprintf(w, "start in #%d, goal in #%d, connected: %t\n", out.StartIn, out.GoalIn, out.Reachable)
		}

		return nil
	},
}
