package commands

import (
	"fmt"
	"strings"

	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/mweb"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	departmentsCampus *string
	waitlistTurma     *string
	offeringDep       *string
)

func init() {
	departmentsCampus = departmentsCmd.Flags().String("campus", "", "The campus to list departments of (name or code).")
	waitlistTurma = waitlistCmd.Flags().String("turma", mweb.AnyTurma, "A regular expression the whole turma identifier must match.")
	offeringDep = offeringCmd.Flags().String("dep", "", "The offering department, needed when more than one department offers the discipline.")

	rootCmd.AddCommand(departmentsCmd)
	rootCmd.AddCommand(offeredCmd)
	rootCmd.AddCommand(waitlistCmd)
	rootCmd.AddCommand(offeringCmd)
}

var departmentsCmd = &cobra.Command{
	Use:   "departamentos [--campus <campus>]",
	Short: "Lists the departments with offerings this semester.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		campus, err := parseCampus(*departmentsCampus)
		if err != nil {
			return err
		}
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		departments, err := client.Departments(cmd.Context(), level, campus, *verbose)
		if err != nil {
			return err
		}

		return render(departments, func(t table.Writer) {
			t.AppendHeader(table.Row{"Código", "Sigla", "Denominação"})
			for _, code := range sortedKeys(departments) {
				d := departments[code]
				t.AppendRow(table.Row{code, d.Acronym, d.Name})
			}
		})
	},
}

var offeredCmd = &cobra.Command{
	Use:   "ofertadas <departamento>",
	Short: "Lists the disciplines a department offers this semester.",
	Args:  cobra.ExactArgs(1),
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

		return render(offered, func(t table.Writer) {
			t.AppendHeader(table.Row{"Código", "Nome"})
			for _, code := range sortedKeys(offered) {
				t.AppendRow(table.Row{code, offered[code]})
			}
		})
	},
}

var waitlistCmd = &cobra.Command{
	Use:   "espera <disciplina> [--turma <regex>]",
	Short: "Lists the seats requested on the waiting list of each turma.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		waitlist, err := client.Waitlist(cmd.Context(), args[0], *waitlistTurma, level, *verbose)
		if err != nil {
			return err
		}

		return render(waitlist, func(t table.Writer) {
			t.AppendHeader(table.Row{"Turma", "Vagas solicitadas"})
			for _, turma := range sortedKeys(waitlist) {
				t.AppendRow(table.Row{turma, waitlist[turma]})
			}
		})
	},
}

func formatSchedule(turma mweb.Turma) string {
	var lines []string
	for _, day := range turma.Schedule.Days() {
		for _, class := range turma.Schedule.On(day) {
			lines = append(lines, fmt.Sprintf("%s %s-%s %s", day, class.Start, class.End, class.Location))
		}
	}
	return strings.Join(lines, "\n")
}

var offeringCmd = &cobra.Command{
	Use:   "oferta <disciplina> [--dep <departamento>]",
	Short: "Lists the turmas of a discipline offered this semester.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var department catalog.Department
		if *offeringDep != "" {
			var err error
			department, err = catalog.ParseDepartment(*offeringDep)
			if err != nil {
				return err
			}
		}
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		offering, err := client.Offering(cmd.Context(), args[0], department, level, *verbose)
		if err != nil {
			return err
		}

		return render(offering, func(t table.Writer) {
			if offering.Name != "" {
				t.SetTitle(fmt.Sprintf("%s (%s)", offering.Name, offering.Department))
			}
			t.AppendHeader(table.Row{"Turma", "Vagas", "Matriculados", "Professores", "Aulas", "Reservas"})
			for _, id := range sortedKeys(offering.Turmas) {
				turma := offering.Turmas[id]
				t.AppendRow(table.Row{
					id,
					turma.Seats,
					turma.Enrolled,
					strings.Join(turma.Instructors, "\n"),
					formatSchedule(turma),
					len(turma.Reserved),
				})
			}
		})
	},
}
