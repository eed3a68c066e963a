package commands

import (
	"context"
	"time"

	"github.com/Matheusmno/MWebCrawler/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	levelName  *string
	timeout    *time.Duration
	verbose    *bool
	jsonOutput *bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	configPath = flags.String("config", "mweb.json5", "The config file to read, a <name>.local.json5 next to it overrides it.")
	levelName = flags.String("level", "graduacao", "The academic level to query (graduacao or posgraduacao).")
	timeout = flags.Duration("timeout", time.Second, "The timeout of a single page fetch, overrides the config.")
	verbose = flags.BoolP("verbose", "v", false, "Log progress and debug information.")
	jsonOutput = flags.Bool("json", false, "Print results as JSON instead of tables.")
}

var rootCmd = &cobra.Command{
	Use:           "mweb",
	Short:         "mweb is a CLI for querying the Matrícula Web course catalog.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
