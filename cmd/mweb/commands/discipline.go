package commands

import (
	"github.com/Matheusmno/MWebCrawler/internal/requirement"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(disciplineCmd)
	rootCmd.AddCommand(prerequisitesCmd)
}

var disciplineCmd = &cobra.Command{
	Use:   "disciplina <codigo>",
	Short: "Shows the description of a discipline.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		info, err := client.DisciplineInfo(cmd.Context(), args[0], level, *verbose)
		if err != nil {
			return err
		}

		return render(info, func(t table.Writer) {
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 100}})
			t.AppendRows([]table.Row{
				{"Departamento", info.DepartmentAcronym + " - " + info.DepartmentName},
				{"Denominação", info.Name},
				{"Nível", info.Level},
				{"Vigência", info.ValidFrom},
				{"Pré-requisitos", info.Prerequisites},
				{"Ementa", info.Syllabus},
			})
			if info.Program != "" {
				t.AppendRow(table.Row{"Programa", info.Program})
			}
			t.AppendRow(table.Row{"Bibliografia", info.Bibliography})
		})
	},
}

var prerequisitesCmd = &cobra.Command{
	Use:   "prereq <codigo>",
	Short: "Shows the prerequisite chain of a discipline, any one option satisfies it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		chain, err := client.Prerequisites(cmd.Context(), args[0], level, *verbose)
		if err != nil {
			return err
		}

		return render(chain.IDs(), func(t table.Writer) {
			t.AppendHeader(table.Row{"Opção", "Disciplinas"})
			for i, group := range chain {
				t.AppendRow(table.Row{i + 1, requirement.Chain{group}.String()})
			}
		})
	},
}
