package commands

import (
	"fmt"
	"strings"

	"github.com/Matheusmno/MWebCrawler/internal/mweb"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	habilitationsCampus *string
	coursesCampus       *string
)

func init() {
	habilitationsCampus = habilitationsCmd.Flags().String("campus", "", "The campus the course belongs to (name or code).")
	coursesCampus = coursesCmd.Flags().String("campus", "", "The campus to list courses of (name or code).")

	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(habilitationsCmd)
	rootCmd.AddCommand(coursesCmd)
}

func disciplineRow(bucket string, d mweb.Discipline) table.Row {
	return table.Row{bucket, d.ID, d.Name, d.Credits.Total(), d.Area}
}

var curriculumCmd = &cobra.Command{
	Use:   "curriculo <curso>",
	Short: "Lists the mandatory, selective and elective disciplines of a course.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		curriculum, err := client.Curriculum(cmd.Context(), args[0], level, *verbose)
		if err != nil {
			return err
		}

		return render(curriculum, func(t table.Writer) {
			t.AppendHeader(table.Row{"Tipo", "Código", "Nome", "Créditos", "Área"})
			for _, code := range sortedKeys(curriculum.Mandatory) {
				t.AppendRow(disciplineRow("obrigatória", curriculum.Mandatory[code]))
			}
			for _, chain := range sortedKeys(curriculum.Chains) {
				for i, group := range curriculum.Chains[chain] {
					for _, d := range group {
						t.AppendRow(disciplineRow(fmt.Sprintf("%s (opção %d)", chain, i+1), d))
					}
				}
			}
			for _, code := range sortedKeys(curriculum.Elective) {
				t.AppendRow(disciplineRow("optativa", curriculum.Elective[code]))
			}
		})
	},
}

var flowCmd = &cobra.Command{
	Use:   "fluxo <habilitacao>",
	Short: "Lists the disciplines suggested for each period of a habilitation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		flow, err := client.Flow(cmd.Context(), args[0], level, *verbose)
		if err != nil {
			return err
		}

		return render(flow, func(t table.Writer) {
			t.AppendHeader(table.Row{"Período", "Créditos", "Disciplinas"})
			for _, period := range flow.Periods() {
				p := flow[period]
				t.AppendRow(table.Row{period, p.Credits, strings.Join(p.Disciplines, ", ")})
			}
		})
	},
}

var habilitationsCmd = &cobra.Command{
	Use:   "habilitacoes <curso> [--campus <campus>]",
	Short: "Lists the habilitations of a course.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		campus, err := parseCampus(*habilitationsCampus)
		if err != nil {
			return err
		}
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		habilitations, err := client.Habilitations(cmd.Context(), args[0], level, campus, *verbose)
		if err != nil {
			return err
		}

		return render(habilitations, func(t table.Writer) {
			t.AppendHeader(table.Row{"Código", "Nome", "Grau", "Períodos", "Créditos"})
			for _, code := range sortedKeys(habilitations) {
				h := habilitations[code]
				t.AppendRow(table.Row{
					code,
					h.Name,
					h.Degree,
					fmt.Sprintf("%d-%d", h.MinTerms, h.MaxTerms),
					h.GraduationCredits,
				})
			}
		})
	},
}

var coursesCmd = &cobra.Command{
	Use:   "cursos [--campus <campus>]",
	Short: "Lists the courses of a campus.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		campus, err := parseCampus(*coursesCampus)
		if err != nil {
			return err
		}
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		courses, err := client.Courses(cmd.Context(), level, campus, *verbose)
		if err != nil {
			return err
		}

		return render(courses, func(t table.Writer) {
			t.AppendHeader(table.Row{"Código", "Denominação", "Modalidade", "Turno"})
			for _, code := range sortedKeys(courses) {
				c := courses[code]
				t.AppendRow(table.Row{code, c.Name, c.Modality, c.Shift})
			}
		})
	},
}
