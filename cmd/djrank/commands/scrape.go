package commands

import (
	"log/slog"
	"os"
	"time"

	"djrank-backend/lib/configutil"
	"djrank-backend/lib/rankings"
	"djrank-backend/lib/rankstore"
	"djrank-backend/lib/restyutil"
	"djrank-backend/lib/scrapers/djmag"
	"djrank-backend/lib/serviceutil"
	"djrank-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl   string `json:"base_url"`
	StartYear int    `json:"start_year"`
	OutputDir string `json:"output_dir"`
}

var scrapeOut *string

func init() {
	scrapeOut = scrapeCmd.Flags().String("out", "", "The directory to write ranking CSVs to.")
	rootCmd.AddCommand(scrapeCmd)
}

// config.json5 is optional, every field has a default
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.StartYear == 0 {
		cfg.StartYear = rankings.DefaultStartYear
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "djmag_rankings"
	}
	return cfg
}

func createClient(cfg Config) *djmag.Client {
	client, err := djmag.NewClient(djmag.ClientOptions{
		BaseUrl: cfg.BaseUrl,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize djmag client", err)
	}
	if *verbose {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/djmag"))
	}
	return client
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--out <path/to/dir>]",
	Short: "Scrapes every poll year and writes yearly and consolidated CSVs.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		telemetry.InstrumentPerfStats(ctx)

		cfg := readConfig()
		if *scrapeOut != "" {
			cfg.OutputDir = *scrapeOut
		}

		client := createClient(cfg)
		store, err := rankstore.NewDirStore(cfg.OutputDir)
		if err != nil {
			serviceutil.Fatal("failed to create output directory", err)
		}

		currentYear := djmag.CurrentYear(time.Now())
		resolver := djmag.NewResolver(client, currentYear)
		aggregator := rankings.NewAggregator(resolver, store, rankings.Options{
			StartYear: cfg.StartYear,
			EndYear:   currentYear,
		})

		t1 := time.Now()
		summary := aggregator.Run(ctx)
		t2 := time.Now()

		if summary.Records == 0 {
			slog.Warn("no rankings were scraped", "start_year", cfg.StartYear, "end_year", currentYear)
			return
		}
		slog.Info(
			"scrape finished",
			"years_resolved", len(summary.YearsResolved),
			"years_failed", summary.YearsFailed,
			"records", summary.Records,
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
