package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/components/chrono"
	"github.com/Matheusmno/MWebCrawler/internal/components/telemetry"
	"github.com/Matheusmno/MWebCrawler/internal/mweb"
	"github.com/Matheusmno/MWebCrawler/internal/store"
	"github.com/Matheusmno/MWebCrawler/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "modernc.org/sqlite"
)

var (
	exportDb      *string
	exportPrereqs *bool
	exportWorkers *int
	exportEvery   *string
)

func init() {
	exportDb = exportCmd.Flags().String("db", "results.db", "The sqlite database to write the curriculum to.")
	exportPrereqs = exportCmd.Flags().Bool("prereqs", false, "Also fetch and store the prerequisites of every discipline.")
	exportWorkers = exportCmd.Flags().Int("workers", 4, "The number of prerequisite fetches in flight.")
	exportEvery = exportCmd.Flags().String("every", "", "A cron spec (e.g. \"@daily\") to keep exporting on until interrupted.")
	rootCmd.AddCommand(exportCmd)
}

func openDB(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	database.SetMaxOpenConns(1)
	_, err = database.Exec(store.Schema)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return database, nil
}

// curriculumCodes returns the code of every discipline that appears in a
// curriculum, without duplicates.
func curriculumCodes(curriculum mweb.Curriculum) []string {
	seen := map[string]struct{}{}
	var codes []string
	add := func(code string) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	for _, code := range sortedKeys(curriculum.Mandatory) {
		add(code)
	}
	for _, chain := range sortedKeys(curriculum.Chains) {
		for _, group := range curriculum.Chains[chain] {
			for _, d := range group {
				add(d.ID)
			}
		}
	}
	for _, code := range sortedKeys(curriculum.Elective) {
		add(code)
	}
	return codes
}

type exportSummary struct {
	Course        string    `json:"curso"`
	Database      string    `json:"db"`
	Disciplines   int       `json:"disciplinas"`
	Prerequisites int       `json:"prerequisitos"`
	ExportedAt    time.Time `json:"exportado_em"`
}

type exporter struct {
	client   *mweb.Client
	level    catalog.Level
	makeTx   store.MakeTx
	database string
	prereqs  bool
	workers  int
	verbose  bool
}

func (e exporter) export(ctx context.Context, course string) (exportSummary, error) {
	t1 := time.Now()

	curriculum, err := e.client.Curriculum(ctx, course, e.level, e.verbose)
	if err != nil {
		return exportSummary{}, err
	}
	// an empty page is indistinguishable from a failed fetch, saving it
	// would wipe the last good snapshot
	if curriculum.Empty() {
		return exportSummary{}, fmt.Errorf("curriculum of %s is empty, keeping the stored snapshot", course)
	}
	err = store.SaveCurriculum(ctx, e.makeTx, course, curriculum)
	if err != nil {
		return exportSummary{}, fmt.Errorf("save curriculum: %w", err)
	}

	codes := curriculumCodes(curriculum)
	summary := exportSummary{
		Course:      course,
		Database:    e.database,
		Disciplines: len(codes),
	}

	if e.prereqs {
		var saved atomic.Int64
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(max(e.workers, 1))
		for _, code := range codes {
			code := code
			group.Go(func() error {
				chain, err := e.client.Prerequisites(groupCtx, code, e.level, e.verbose)
				if err != nil {
					return err
				}
				// same as above, an empty chain keeps what is stored
				if len(chain) == 0 {
					slog.Debug("no prerequisites fetched, keeping stored ones", "discipline", code)
					return nil
				}
				err = store.SavePrerequisites(groupCtx, e.makeTx, code, chain)
				if err != nil {
					return err
				}
				saved.Add(1)
				return nil
			})
		}
		err = group.Wait()
		if err != nil {
			return exportSummary{}, fmt.Errorf("export prerequisites: %w", err)
		}
		summary.Prerequisites = int(saved.Load())
	}

	summary.ExportedAt = timezone.Now()
	slog.Info("export time", "course", course, "seconds", time.Since(t1).Seconds())
	return summary, nil
}

func renderSummary(summary exportSummary) error {
	return render(summary, func(t table.Writer) {
		t.AppendRows([]table.Row{
			{"Curso", summary.Course},
			{"Banco", summary.Database},
			{"Disciplinas", summary.Disciplines},
			{"Pré-requisitos", summary.Prerequisites},
			{"Exportado em", summary.ExportedAt.Format(time.DateTime)},
		})
	})
}

// schedule re-runs the export on a cron spec until ctx is done, which
// main ties to Ctrl+C.
func (e exporter) schedule(ctx context.Context, spec, course string) error {
	cron := chrono.NewStandardCron(telemetry.SlogAPI{}, timezone.Location)
	err := cron.Cron(spec, func() {
		summary, err := e.export(ctx, course)
		if err != nil {
			slog.Error("scheduled export failed", "course", course, "err", err)
			return
		}
		err = renderSummary(summary)
		if err != nil {
			slog.Error("failed to print export summary", "err", err)
		}
	})
	if err != nil {
		<-cron.Stop().Done()
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	slog.Info("scheduled export", "course", course, "schedule", spec)
	<-ctx.Done()
	<-cron.Stop().Done()
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export <curso> [--db <path/to/output.db>] [--prereqs] [--workers <n>] [--every <cron spec>]",
	Short: "Writes the curriculum of a course (and optionally its prerequisites) to a sqlite database.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, level, err := newClient(cmd)
		if err != nil {
			return err
		}
		database, err := openDB(*exportDb)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer database.Close()

		e := exporter{
			client:   client,
			level:    level,
			makeTx:   store.NewMakeTx(database),
			database: *exportDb,
			prereqs:  *exportPrereqs,
			workers:  *exportWorkers,
			verbose:  *verbose,
		}

		if *exportEvery != "" {
			return e.schedule(cmd.Context(), *exportEvery, args[0])
		}

		summary, err := e.export(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return renderSummary(summary)
	},
}
