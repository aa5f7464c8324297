// Package scenario loads grid pathfinding scenarios from YAML files and turns
// them into ready-to-run searches.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/gridgraph"
	"github.com/katalvlaran/wayfind/pq"
)

// Sentinel errors for scenario validation.
var (
	ErrNoGrid           = errors.New("scenario: grid is empty")
	ErrBadPoint         = errors.New("scenario: point must be [x, y]")
	ErrBlockedEndpoint  = errors.New("scenario: start or goal is a wall")
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")
	ErrBadDuration      = errors.New("scenario: invalid time_budget")
)

// Scenario is the on-disk description of one search.
//
//	name: corridor
//	grid:
//	  - "....."
//	  - "..#.."
//	start: [0, 0]
//	goal: [4, 1]
//	connectivity: 8
//	heuristic: octile
//	max_iterations: 10000
//	time_budget: 50ms
type Scenario struct {
	Name            string   `yaml:"name"`
	Grid            []string `yaml:"grid"`
	Start           []int    `yaml:"start"`
	Goal            []int    `yaml:"goal"`
	Connectivity    int      `yaml:"connectivity"`
	CornerCutting   bool     `yaml:"corner_cutting"`
	Weighted        bool     `yaml:"weighted"`
	Heuristic       string   `yaml:"heuristic"`
	Strategy        string   `yaml:"strategy"`
	MaxIterations   int      `yaml:"max_iterations"`
	TimeBudget      string   `yaml:"time_budget"`
	TrackStepCost   bool     `yaml:"track_step_cost"`
	TrackConsidered bool     `yaml:"track_considered"`
}

// Load reads and parses a scenario file. JSON files parse too, since YAML is
// a superset of JSON.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &s, nil
}

// Plan is a validated scenario bound to a concrete grid.
type Plan struct {
	Name        string
	Grid        *gridgraph.GridGraph
	Start, Goal gridgraph.Cell
	Heuristic   astar.Heuristic[gridgraph.Cell]
	Strategy    pq.Strategy
	Options     []astar.Option
}

// GridGraph builds only the scenario's grid, ignoring start and goal.
func (s *Scenario) GridGraph() (*gridgraph.GridGraph, error) {
	if len(s.Grid) == 0 {
		return nil, ErrNoGrid
	}
	conn, err := gridgraph.ParseConnectivity(s.Connectivity)
	if err != nil {
		return nil, err
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	opts.CornerCutting = s.CornerCutting
	opts.Weighted = s.Weighted

	return gridgraph.FromStrings(s.Grid, opts)
}

// Build validates s and resolves it into a Plan.
func (s *Scenario) Build() (*Plan, error) {
	gg, err := s.GridGraph()
	if err != nil {
		return nil, err
	}
	start, err := cellOf(gg, "start", s.Start)
	if err != nil {
		return nil, err
	}
	goal, err := cellOf(gg, "goal", s.Goal)
	if err != nil {
		return nil, err
	}

	h, err := heuristicFor(gg, s.Heuristic)
	if err != nil {
		return nil, err
	}
	strategy, err := pq.ParseStrategy(s.Strategy)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Name:      s.Name,
		Grid:      gg,
		Start:     start,
		Goal:      goal,
		Heuristic: h,
		Strategy:  strategy,
	}
	if s.MaxIterations > 0 {
		p.Options = append(p.Options, astar.WithMaxIterations(s.MaxIterations))
	}
	if s.TimeBudget != "" {
		d, err := time.ParseDuration(s.TimeBudget)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadDuration, s.TimeBudget)
		}
		p.Options = append(p.Options, astar.WithTimeBudget(d))
	}
	if s.TrackStepCost {
		p.Options = append(p.Options, astar.WithTrackStepCost())
	}
	if s.TrackConsidered {
		p.Options = append(p.Options, astar.WithTrackConsidered())
	}

	return p, nil
}

// Solve runs the plan. extra options are applied after the plan's own, so a
// caller can override the strategy or install a logger.
func (p *Plan) Solve(ctx context.Context, extra ...astar.Option) (astar.Result[gridgraph.Cell], error) {
	opts := make([]astar.Option, 0, len(p.Options)+len(extra)+2)
	opts = append(opts, astar.WithQueueStrategy(p.Strategy), astar.WithCapacityHint(p.Grid.Width*p.Grid.Height))
	opts = append(opts, p.Options...)
	opts = append(opts, extra...)

	return astar.Find(ctx, p.Start, p.Goal, p.Grid.EachNeighbor, p.Grid.Cost, p.Heuristic, opts...)
}

func cellOf(gg *gridgraph.GridGraph, name string, xy []int) (gridgraph.Cell, error) {
	if len(xy) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %s has %d coordinates", ErrBadPoint, name, len(xy))
	}
	c, err := gg.CellAt(xy[0], xy[1])
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%s: %w", name, err)
	}
	if !gg.Walkable(c.X, c.Y) {
		return gridgraph.Cell{}, fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, name, c)
	}

	return c, nil
}

// heuristicFor maps a heuristic name to a function. The empty name picks the
// grid's own admissible choice.
func heuristicFor(gg *gridgraph.GridGraph, name string) (astar.Heuristic[gridgraph.Cell], error) {
	switch strings.ToLower(name) {
	case "":
		return gg.Heuristic(), nil
	case "euclidean":
		return astar.Euclidean[gridgraph.Cell], nil
	case "manhattan":
		return gridgraph.Manhattan, nil
	case "octile":
		return gridgraph.Octile, nil
	case "chebyshev":
		return gridgraph.Chebyshev, nil
	case "zero", "dijkstra":
		return astar.Zero[gridgraph.Cell], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
