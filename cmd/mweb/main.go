package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Matheusmno/MWebCrawler/cmd/mweb/commands"
	"github.com/Matheusmno/MWebCrawler/lib/osutil"
	"github.com/Matheusmno/MWebCrawler/lib/telemetry"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	defer stop()

	tel, err := telemetry.SetupFromEnv(ctx, "mweb")
	if err != nil {
		slog.Debug("telemetry disabled", "err", err)
	}

	err = commands.ExecuteContext(ctx)

	if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
