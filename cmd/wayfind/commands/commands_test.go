package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallScenario = `name: wall
grid:
  - "....."
  - "....."
  - "..#.."
  - "....."
  - "....."
start: [0, 0]
goal: [4, 4]
track_step_cost: true
`

const splitScenario = `grid:
  - "..#.."
  - "..#.."
start: [0, 0]
goal: [4, 1]
`

func writeTestYAML(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// runCmd executes the root command with fresh global flag state.
func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	inputFile, outputJSON, showMetrics = "", false, false
	logLevel, logFormat, strategy = "warn", "text", ""
	maxDistance = 0

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	path := writeTestYAML(t, "wall.yaml", wallScenario)

	stdout, _, err := runCmd(t, "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scenario: wall")
	assert.Contains(t, stdout, "cost: 8\n")
	assert.Contains(t, stdout, "path: (0,0)")
	assert.Contains(t, stdout, "strategy: heap")

	var pathLine string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "path: ") {
			pathLine = strings.TrimPrefix(line, "path: ")
		}
	}
	cells := strings.Fields(pathLine)
	require.Len(t, cells, 9)
	assert.Equal(t, "(4,4)", cells[8])
	assert.NotContains(t, cells, "(2,2)")
}

func TestSolve_JSON(t *testing.T) {
	path := writeTestYAML(t, "wall.yaml", wallScenario)

	stdout, _, err := runCmd(t, "solve", "-f", path, "--json", "--strategy", "linear")
	require.NoError(t, err)

	var out solveOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Found)
	assert.Equal(t, 8.0, out.Cost)
	assert.Len(t, out.Path, 9)
	assert.Equal(t, [2]int{0, 0}, out.Path[0])
	assert.Equal(t, [2]int{4, 4}, out.Path[8])
	assert.Len(t, out.StepCost, 9)
	assert.Equal(t, "goal", out.Stop)
	assert.Equal(t, "linear", out.Stats.Strategy)
	assert.Len(t, out.RunID, 36)
}

func TestSolve_NoPath(t *testing.T) {
	path := writeTestYAML(t, "split.yaml", splitScenario)

	stdout, _, err := runCmd(t, "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "no path (exhausted)")
}

func TestSolve_Metrics(t *testing.T) {
	path := writeTestYAML(t, "wall.yaml", wallScenario)

	stdout, _, err := runCmd(t, "solve", "-f", path, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stdout, `wayfind_searches_total{outcome="goal",strategy="heap"} 1`)
	assert.Contains(t, stdout, "wayfind_nodes_considered_count 1")
}

func TestSolve_DebugLogs(t *testing.T) {
	path := writeTestYAML(t, "wall.yaml", wallScenario)

	_, stderr, err := runCmd(t, "solve", "-f", path, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"astar: search finished"`)
	assert.Contains(t, stderr, `"msg":"path found"`)
	assert.Contains(t, stderr, `"run_id":"`)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := runCmd(t, "solve")
	assert.ErrorContains(t, err, "-f")

	_, _, err = runCmd(t, "solve", "-f", "/nonexistent.yaml")
	assert.Error(t, err)

	path := writeTestYAML(t, "wall.yaml", wallScenario)
	_, _, err = runCmd(t, "solve", "-f", path, "--strategy", "bogus")
	assert.ErrorContains(t, err, "unknown")

	bad := writeTestYAML(t, "bad.yaml", "grid: ['..']\nstart: [0, 0]\ngoal: [9, 9]\n")
	_, _, err = runCmd(t, "solve", "-f", bad)
	assert.ErrorContains(t, err, "out of bounds")
}

func TestComponents(t *testing.T) {
	path := writeTestYAML(t, "split.yaml", splitScenario)

	stdout, _, err := runCmd(t, "components", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "components: 2")
	assert.Contains(t, stdout, "#0: 4 cells")
	assert.Contains(t, stdout, "#1: 4 cells")
	assert.Contains(t, stdout, "start in #0, goal in #1, connected: false")

	stdout, _, err = runCmd(t, "components", "-f", path, "--json")
	require.NoError(t, err)
	var out componentsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, []int{4, 4}, out.Sizes)
	assert.Equal(t, 0, out.StartIn)
	assert.Equal(t, 1, out.GoalIn)
	assert.False(t, out.Reachable)
}

func TestComponents_BlockedGoalLogged(t *testing.T) {
	path := writeTestYAML(t, "blocked.yaml", `grid:
  - "..#.."
start: [0, 0]
goal: [2, 0]
`)

	stdout, stderr, err := runCmd(t, "components", "-f", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "components: 2")
	assert.NotContains(t, stdout, "start in")
	assert.Contains(t, stderr, "start/goal not placed")
	assert.Contains(t, stderr, "wall")
}

func TestReach(t *testing.T) {
	path := writeTestYAML(t, "wall.yaml", wallScenario)

	stdout, _, err := runCmd(t, "reach", "-f", path, "--max-distance", "2", "--json")
	require.NoError(t, err)
	var out reachOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, [2]int{0, 0}, out.From)
	assert.Equal(t, 6, out.Reachable)
	assert.Equal(t, 2.0, out.Farthest)

	stdout, _, err = runCmd(t, "reach", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "reachable: 24  farthest: 8")
}
