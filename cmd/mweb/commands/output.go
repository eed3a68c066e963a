package commands

import (
	"encoding/json"
	"io"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
)

var stdout io.Writer = os.Stdout

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(stdout)
	return t
}

func printJSON(value any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(value)
}

// render prints value as JSON with --json, otherwise it lets fill build a
// table.
func render(value any, fill func(t table.Writer)) error {
	if *jsonOutput {
		return printJSON(value)
	}
	t := newTable()
	fill(t)
	t.Render()
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
