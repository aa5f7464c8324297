package commands

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/wayfind/gridgraph"
)

func points(cells []gridgraph.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.X, c.Y}
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
