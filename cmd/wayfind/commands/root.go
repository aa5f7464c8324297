package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/internal/scenario"
	"github.com/katalvlaran/wayfind/pq"
	"github.com/katalvlaran/wayfind/telemetry"
)

var (
	// Global flags
	inputFile  string
	outputJSON bool
	logLevel   string
	logFormat  string
	strategy   string

	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Grid pathfinding with A*",
	Long: `wayfind runs A* searches over grid scenarios described in YAML.

A scenario lists the grid rows ('#' wall, '.' floor, '1'-'9' terrain weight),
the start and goal cells and optional search limits.

Examples:
  # Solve a scenario and print the path
  wayfind solve -f maze.yaml

  # Machine-readable output with the linear frontier
  wayfind solve -f maze.yaml --strategy linear --json | jq '.cost'

  # Which regions of the map are connected
  wayfind components -f maze.yaml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = telemetry.NewLogger(logLevel, logFormat, cmd.ErrOrStderr())
		if _, err := pq.ParseStrategy(strategy); err != nil {
			return err
		}

		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "scenario file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "", "frontier queue: heap or linear (default from scenario, else heap)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(reachCmd)
}

// loadScenario reads the file named by -f.
func loadScenario() (*scenario.Scenario, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("input file is required, use -f flag")
	}

	return scenario.Load(inputFile)
}
