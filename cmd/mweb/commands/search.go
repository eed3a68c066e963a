package commands

import (
	"fmt"

	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchLimit *int

func init() {
	searchLimit = searchCmd.Flags().Int("limit", 10, "The maximum number of results, 0 shows every discipline.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <departamento> <query> [--limit <n>]",
	Short: "Finds the disciplines of a department whose names are closest to a query.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		department, err := catalog.ParseDepartment(args[0])
		if err != nil {
			return err
		}
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		offered, err := client.OfferedDisciplines(cmd.Context(), department, level, *verbose)
		if err != nil {
			return err
		}

		matches := textutil.Rank(args[1], offered, *searchLimit)
		return render(matches, func(t table.Writer) {
			t.AppendHeader(table.Row{"Código", "Nome", "Similaridade"})
			for _, m := range matches {
				t.AppendRow(table.Row{m.Key, m.Name, fmt.Sprintf("%.3f", m.Similarity)})
			}
		})
	},
}
