package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/components/telemetry"
	"github.com/Matheusmno/MWebCrawler/internal/mweb"
	"github.com/Matheusmno/MWebCrawler/lib/configutil"
	"github.com/Matheusmno/MWebCrawler/lib/platforms/matriculaweb"
	"github.com/Matheusmno/MWebCrawler/lib/restyutil"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl           string  `json:"base_url"`
	Timeout           string  `json:"timeout"`
	UserAgent         string  `json:"user_agent"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	RespectRobots     bool    `json:"respect_robots"`
	BypassCloudflare  bool    `json:"bypass_cloudflare"`
	// DumpDir is cleared and then receives every request/response pair.
	DumpDir string `json:"dump_dir"`
}

// readConfig reads the config file, a missing file means the defaults.
func readConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

// fetchTimeout resolves the timeout, the --timeout flag wins over the
// config file.
func fetchTimeout(cmd *cobra.Command, cfg Config) (time.Duration, error) {
	if cmd.Flags().Changed("timeout") || cfg.Timeout == "" {
		return *timeout, nil
	}
	d, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout in config: %w", err)
	}
	return d, nil
}

func fetcherOptions(cfg Config, timeout time.Duration) (matriculaweb.Options, error) {
	opts := matriculaweb.Options{
		BaseUrl:           cfg.BaseUrl,
		Timeout:           timeout,
		UserAgent:         cfg.UserAgent,
		RequestsPerSecond: cfg.RequestsPerSecond,
		RespectRobots:     cfg.RespectRobots,
		BypassCloudflare:  cfg.BypassCloudflare,
	}
	if cfg.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			return matriculaweb.Options{}, fmt.Errorf("create dump dir: %w", err)
		}
		opts.Output = output
	}
	return opts, nil
}

// newClient builds the query client and resolves the --level flag.
func newClient(cmd *cobra.Command) (*mweb.Client, catalog.Level, error) {
	level, err := catalog.ParseLevel(*levelName)
	if err != nil {
		return nil, "", err
	}
	cfg, err := readConfig(*configPath)
	if err != nil {
		return nil, "", err
	}
	d, err := fetchTimeout(cmd, cfg)
	if err != nil {
		return nil, "", err
	}
	opts, err := fetcherOptions(cfg, d)
	if err != nil {
		return nil, "", err
	}

	tel := telemetry.SlogAPI{}
	fetcher, err := matriculaweb.NewClient(opts, tel)
	if err != nil {
		return nil, "", err
	}
	client, err := mweb.New(fetcher, tel, mweb.Options{
		Timeout: d,
		Logger:  slog.Default(),
	})
	if err != nil {
		return nil, "", err
	}
	return client, level, nil
}

func parseCampus(value string) (catalog.Campus, error) {
	if value == "" {
		return catalog.DarcyRibeiro, nil
	}
	return catalog.ParseCampus(value)
}
