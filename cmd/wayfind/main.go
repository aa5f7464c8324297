// Package main provides the wayfind CLI.
//
// Usage:
//
//	wayfind [flags] <command> -f scenario.yaml
//
// Commands:
//
//	solve       - find the cheapest path between the scenario's start and goal
//	components  - list walkable regions of the scenario's grid
//	reach       - list cells reachable from the start within a cost budget
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wayfind/cmd/wayfind/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
