package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/dealscope/internal/cheapshark"
	"github.com/Veraticus/dealscope/internal/cli"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cheapsharkOrigin = "cheapshark"

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch current deals from CheapShark",
		Long: `Fetch discounted games from the CheapShark API, keep the ones that pass
the configured criteria and write them as deals.json. With --db the SQLite
catalog is replaced as well.

Nothing is written when the fetch fails or is interrupted.`,
		Args: cobra.NoArgs,
		RunE: runFetch,
	}

	cmd.Flags().StringP("out", "o", "deals.json", "Write the deal list to this JSON file")
	cmd.Flags().Bool("db", false, "Also replace the SQLite catalog")
	cmd.Flags().Int("pages", 0, "Number of API pages to fetch (default from config)")

	_ = viper.BindPFlag("fetch.output", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("fetch.pages", cmd.Flags().Lookup("pages"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	writeDB, _ := cmd.Flags().GetBool("db")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Fetching deals"))

	handler := cli.NewInterruptHandler(out, "Fetch")
	ctx := handler.HandleInterrupts(cmd.Context(), true)

	client := cheapshark.NewClient(cfg.ClientConfig())
	defer client.Close()

	criteria := cfg.Criteria()
	progress := cli.NewPageProgress(out, criteria.Pages)
	pipeline := cheapshark.NewPipeline(client, criteria, progress.Update)

	start := time.Now()
	deals, summary, err := pipeline.Run(ctx)
	progress.Finish()
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		if common.IsRetryable(err) {
			return common.NewUserError("CheapShark is unavailable right now, try again later", err)
		}
		return fmt.Errorf("fetch failed: %w", err)
	}
	common.LogInfo("fetch finished", common.Fields{
		"deals":    len(deals),
		"rejected": summary.Rejected,
		"duration": time.Since(start),
	})

	result := cli.FetchSummary{
		Best:            summary.Best,
		Output:          cfg.Fetch.Output,
		Fetched:         summary.Fetched,
		Rejected:        summary.Rejected,
		Kept:            summary.Kept,
		AverageDiscount: summary.AverageDiscount,
	}

	if err := writeDealsFile(cfg.Fetch.Output, deals); err != nil {
		return err
	}

	if writeDB {
		store, err := storage.NewSQLiteStorage(cfg.Catalog.DB)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate catalog: %w", err)
		}
		if err := store.ReplaceDeals(ctx, deals, cheapsharkOrigin); err != nil {
			return fmt.Errorf("failed to store deals: %w", err)
		}
		result.Catalog = store.Path()
	}

	fmt.Fprintln(out, cli.RenderFetchSummary(result))
	return nil
}

// writeDealsFile writes deals as indented JSON, replacing path atomically.
func writeDealsFile(path string, deals []model.Deal) error {
	if deals == nil {
		deals = []model.Deal{}
	}
	data, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deals: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".deals-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write deals: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write deals: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
